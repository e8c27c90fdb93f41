package order_status_changed

import (
	"delivery/internal/entities"
	"delivery/internal/pkg/factory/status_handle"
	"delivery/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type HandlerFactory interface {
	GetHandler(code entities.OrderStatusCode) (status_handle.ExecuteFn, error)
}
