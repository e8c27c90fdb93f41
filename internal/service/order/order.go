package order

import (
	"context"
	"fmt"

	"delivery/internal/entities"
)

type Order struct {
	repository Repository
	addresses  AddressChecker
	txManager  TxManager
}

func New(repository Repository, addresses AddressChecker, txManager TxManager) *Order {
	return &Order{
		repository: repository,
		addresses:  addresses,
		txManager:  txManager,
	}
}

// CreateOrder создаёт заказ вместе с первой строкой статуса "1" в одной
// транзакции: либо обе записи видны читателям, либо ни одной. Валидация
// входа выполняется до открытия транзакции.
func (s *Order) CreateOrder(ctx context.Context, orderCreate entities.OrderCreate) (int64, error) {
	if orderCreate.SenderID == nil ||
		orderCreate.ReceiverID == nil ||
		orderCreate.AddressID == nil ||
		orderCreate.ItemDescription == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidItemDescription(*orderCreate.ItemDescription) {
		return 0, ErrMissingRequiredFields
	}
	if !isValidID(*orderCreate.SenderID) || !isValidID(*orderCreate.ReceiverID) {
		return 0, ErrInvalidUserID
	}
	if *orderCreate.SenderID == *orderCreate.ReceiverID {
		return 0, ErrSenderIsReceiver
	}

	image := ""
	if orderCreate.Image != nil {
		image = *orderCreate.Image
	}
	orderCreate.Image = &image

	var orderID int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		owned, err := s.addresses.BelongsToUser(ctx, *orderCreate.AddressID, *orderCreate.ReceiverID)
		if err != nil {
			return fmt.Errorf("check address ownership: %w", err)
		}
		if !owned {
			return ErrAddressMismatch
		}

		id, err := s.repository.Create(ctx, orderCreate)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		code := entities.StatusWaitingForRider
		description := ""
		_, err = s.repository.AppendStatus(ctx, entities.OrderStatusAppend{
			OrderID:     &id,
			Code:        &code,
			Image:       &image,
			Description: &description,
		})
		if err != nil {
			return fmt.Errorf("append initial status: %w", err)
		}

		orderID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// ListSentOrders возвращает заказы, где пользователь отправитель;
// второй стороной в строке выступает получатель.
func (s *Order) ListSentOrders(ctx context.Context, userID int64) ([]entities.OrderView, error) {
	if !isValidID(userID) {
		return nil, ErrInvalidUserID
	}

	views, err := s.repository.ListBySender(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list sent orders: %w", err)
	}
	return views, nil
}

// ListReceivedOrders возвращает заказы, где пользователь получатель;
// второй стороной в строке выступает отправитель.
func (s *Order) ListReceivedOrders(ctx context.Context, userID int64) ([]entities.OrderView, error) {
	if !isValidID(userID) {
		return nil, ErrInvalidUserID
	}

	views, err := s.repository.ListByReceiver(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list received orders: %w", err)
	}
	return views, nil
}

func (s *Order) MarkRiderAccepted(ctx context.Context, orderID int64, image string) (*entities.OrderStatus, error) {
	return s.appendProgress(ctx, orderID, entities.StatusRiderAccepted, image)
}

func (s *Order) MarkPickedUp(ctx context.Context, orderID int64, image string) (*entities.OrderStatus, error) {
	return s.appendProgress(ctx, orderID, entities.StatusPickedUp, image)
}

func (s *Order) MarkDelivered(ctx context.Context, orderID int64, image string) (*entities.OrderStatus, error) {
	return s.appendProgress(ctx, orderID, entities.StatusDelivered, image)
}

// appendProgress добавляет новую строку статуса. История append-only:
// существующие строки не обновляются, переход допускается только строго
// вперёд, после "4" добавления запрещены. Проверка и вставка идут в
// serializable транзакции, чтобы конкурирующие переходы по одному заказу
// не обгоняли друг друга.
func (s *Order) appendProgress(ctx context.Context, orderID int64, code entities.OrderStatusCode, image string) (*entities.OrderStatus, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !code.Known() {
		return nil, fmt.Errorf("%w: %s", ErrUndefinedStatus, code)
	}

	var appended *entities.OrderStatus
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		latest, err := s.repository.GetLatestStatus(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get latest status: %w", err)
		}

		if latest.Code == entities.StatusDelivered {
			return ErrOrderDelivered
		}
		if code.Ordinal() <= latest.Code.Ordinal() {
			return ErrNonForwardTransition
		}

		description := ""
		status, err := s.repository.AppendStatus(ctx, entities.OrderStatusAppend{
			OrderID:     &orderID,
			Code:        &code,
			Image:       &image,
			Description: &description,
		})
		if err != nil {
			return fmt.Errorf("append status: %w", err)
		}

		appended = status
		return nil
	})
	if err != nil {
		return nil, err
	}
	return appended, nil
}
