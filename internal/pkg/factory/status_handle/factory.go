package status_handle

import (
	"context"
	"fmt"

	"delivery/internal/entities"
	"delivery/internal/service/order"
)

type ProgressService interface {
	MarkRiderAccepted(ctx context.Context, orderID int64, image string) (*entities.OrderStatus, error)
	MarkPickedUp(ctx context.Context, orderID int64, image string) (*entities.OrderStatus, error)
	MarkDelivered(ctx context.Context, orderID int64, image string) (*entities.OrderStatus, error)
}

type ExecuteFn func(ctx context.Context, orderID int64, image string) error

type StatusHandlerFactory struct {
	orderService ProgressService
}

func NewStatusHandlerFactory(orderService ProgressService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		orderService: orderService,
	}
}

// GetHandler отдаёт функцию перехода для кода из события. Статус "1"
// пишется только при создании заказа и через события не проходит.
func (f *StatusHandlerFactory) GetHandler(code entities.OrderStatusCode) (ExecuteFn, error) {
	switch code {
	case entities.StatusRiderAccepted:
		return f.riderAcceptedHandler, nil
	case entities.StatusPickedUp:
		return f.pickedUpHandler, nil
	case entities.StatusDelivered:
		return f.deliveredHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, code)
	}
}

func (f *StatusHandlerFactory) riderAcceptedHandler(ctx context.Context, orderID int64, image string) error {
	_, err := f.orderService.MarkRiderAccepted(ctx, orderID, image)
	if err != nil {
		return fmt.Errorf("mark order %d rider accepted: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) pickedUpHandler(ctx context.Context, orderID int64, image string) error {
	_, err := f.orderService.MarkPickedUp(ctx, orderID, image)
	if err != nil {
		return fmt.Errorf("mark order %d picked up: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) deliveredHandler(ctx context.Context, orderID int64, image string) error {
	_, err := f.orderService.MarkDelivered(ctx, orderID, image)
	if err != nil {
		return fmt.Errorf("mark order %d delivered: %w", orderID, err)
	}
	return nil
}
