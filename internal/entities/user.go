package entities

type User struct {
	ID           int64
	Name         string
	Phone        string
	ProfileImage string
}

type UserModify struct {
	ID           *int64
	Name         *string
	Phone        *string
	ProfileImage *string
}

// UserProfile профиль вместе со всеми адресами пользователя.
type UserProfile struct {
	User      User
	Addresses []Address
}
