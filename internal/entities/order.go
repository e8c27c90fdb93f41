package entities

import "time"

type Order struct {
	ID              int64
	SenderID        int64
	ReceiverID      int64
	AddressID       int64
	RiderID         *int64
	ItemDescription string
	Image           string
	CreatedAt       time.Time
}

type OrderCreate struct {
	SenderID        *int64
	ReceiverID      *int64
	AddressID       *int64
	ItemDescription *string
	Image           *string
}
