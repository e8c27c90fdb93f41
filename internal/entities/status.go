package entities

import "time"

// OrderStatusCode закрытый словарь статусов доставки. Коды хранятся
// как строки, порядок переходов задаётся через Ordinal.
type OrderStatusCode string

const (
	StatusWaitingForRider OrderStatusCode = "1"
	StatusRiderAccepted   OrderStatusCode = "2"
	StatusPickedUp        OrderStatusCode = "3"
	StatusDelivered       OrderStatusCode = "4"
)

func (c OrderStatusCode) String() string {
	return string(c)
}

// Describe тотальна: для любого кода, включая неизвестный, возвращает
// читаемый текст.
func (c OrderStatusCode) Describe() string {
	switch c {
	case StatusWaitingForRider:
		return "waiting for rider pickup"
	case StatusRiderAccepted:
		return "rider accepted"
	case StatusPickedUp:
		return "in transit"
	case StatusDelivered:
		return "delivered"
	default:
		return "unknown status"
	}
}

func (c OrderStatusCode) Known() bool {
	switch c {
	case StatusWaitingForRider, StatusRiderAccepted, StatusPickedUp, StatusDelivered:
		return true
	default:
		return false
	}
}

// Ordinal возвращает позицию кода в цепочке переходов, 0 для
// неизвестных кодов.
func (c OrderStatusCode) Ordinal() int {
	switch c {
	case StatusWaitingForRider:
		return 1
	case StatusRiderAccepted:
		return 2
	case StatusPickedUp:
		return 3
	case StatusDelivered:
		return 4
	default:
		return 0
	}
}

// OrderStatus одно событие в истории заказа. История append-only,
// текущее состояние заказа - строка с максимальным ID.
type OrderStatus struct {
	ID          int64
	OrderID     int64
	Code        OrderStatusCode
	Image       string
	Description string
	CreatedAt   time.Time
}

type OrderStatusAppend struct {
	OrderID     *int64
	Code        *OrderStatusCode
	Image       *string
	Description *string
}
