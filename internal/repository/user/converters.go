package user

import "delivery/internal/entities"

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}
	return &entities.User{
		ID:           u.ID,
		Name:         u.Name,
		Phone:        u.Phone,
		ProfileImage: u.ProfileImage,
	}
}

func FromDomainModify(u *entities.UserModify) *UserModifyDB {
	if u == nil {
		return nil
	}
	userModifyDB := &UserModifyDB{}

	if u.ID != nil {
		userModifyDB.ID = u.ID
	}
	if u.Name != nil {
		userModifyDB.Name = u.Name
	}
	if u.Phone != nil {
		userModifyDB.Phone = u.Phone
	}
	if u.ProfileImage != nil {
		userModifyDB.ProfileImage = u.ProfileImage
	}

	return userModifyDB
}
