//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"delivery/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderCreate entities.OrderCreate) (int64, error)
	AppendStatus(ctx context.Context, statusAppend entities.OrderStatusAppend) (*entities.OrderStatus, error)
	GetLatestStatus(ctx context.Context, orderID int64) (*entities.OrderStatus, error)

	ListBySender(ctx context.Context, userID int64) ([]entities.OrderView, error)
	ListByReceiver(ctx context.Context, userID int64) ([]entities.OrderView, error)
}

type AddressChecker interface {
	BelongsToUser(ctx context.Context, addressID, userID int64) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}
