//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=address_delete_test
package address_delete

import (
	"context"

	"delivery/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RemoveAddress(ctx context.Context, addressID, userID int64) error
}
