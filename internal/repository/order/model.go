package order

import "time"

type OrderStatusDB struct {
	StatusID    int64
	OrderID     int64
	Status      string
	Image       string
	Description string
	CreatedAt   time.Time
}

// OrderViewDB — строка выборки списка заказов. Статус и адрес приходят
// через LEFT JOIN и могут отсутствовать, поэтому nullable поля указатели.
type OrderViewDB struct {
	OrderID           int64
	ItemDescription   string
	ItemImage         string
	StatusCode        *string
	StatusAt          *time.Time
	CounterpartyID    int64
	CounterpartyName  string
	CounterpartyPhone string
	CounterpartyImage string
	Address           *string
	Latitude          *float64
	Longitude         *float64
}
