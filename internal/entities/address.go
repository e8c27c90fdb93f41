package entities

type Address struct {
	ID        int64
	UserID    int64
	Address   string
	Latitude  float64
	Longitude float64
}

type AddressModify struct {
	ID        *int64
	UserID    *int64
	Address   *string
	Latitude  *float64
	Longitude *float64
}
