package user

type UserDB struct {
	ID           int64
	Name         string
	Phone        string
	ProfileImage string
}

type UserModifyDB struct {
	ID           *int64
	Name         *string
	Phone        *string
	ProfileImage *string
}
