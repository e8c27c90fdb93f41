//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"delivery/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error)
	PhoneInUse(ctx context.Context, phone string, excludeUserID int64) (bool, error)
}

type AddressRepository interface {
	Create(ctx context.Context, addressModify entities.AddressModify) (*entities.Address, error)
	Delete(ctx context.Context, addressID, userID int64) error
	ListByUser(ctx context.Context, userID int64) ([]entities.Address, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
