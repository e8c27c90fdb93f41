//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_sent_get_test
package orders_sent_get

import (
	"context"

	"delivery/internal/entities"
	"delivery/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListSentOrders(ctx context.Context, userID int64) ([]entities.OrderView, error)
}
