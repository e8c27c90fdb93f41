package address

type AddressDB struct {
	ID        int64
	UserID    int64
	Address   string
	Latitude  float64
	Longitude float64
}
