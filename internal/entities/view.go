package entities

import "time"

// UnknownAddressText подставляется в выдачу, когда адрес назначения
// удалён или не найден.
const UnknownAddressText = "no address data"

// OrderView производная read-only проекция: заказ + последний статус +
// профиль второй стороны + адрес назначения. Не персистится, собирается
// на каждый запрос листинга заново.
type OrderView struct {
	OrderID         int64
	ItemDescription string
	ItemImage       string

	// StatusCode пустой, если у заказа нет ни одной строки статуса.
	StatusCode OrderStatusCode
	StatusAt   *time.Time

	CounterpartyID    int64
	CounterpartyName  string
	CounterpartyPhone string
	CounterpartyImage string

	DestinationAddress string
	DestinationLat     float64
	DestinationLon     float64
}
