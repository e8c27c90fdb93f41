package address

import "delivery/internal/entities"

func ToDomain(a *AddressDB) *entities.Address {
	if a == nil {
		return nil
	}
	return &entities.Address{
		ID:        a.ID,
		UserID:    a.UserID,
		Address:   a.Address,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
	}
}
