//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_put_test
package user_put

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
	UpdateProfile(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
}
