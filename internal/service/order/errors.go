package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrSenderIsReceiver      = errors.New("sender and receiver must differ")

	ErrAddressMismatch      = errors.New("address does not match receiver")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderDelivered       = errors.New("order already delivered")
	ErrNonForwardTransition = errors.New("status transition must move forward")
	ErrUndefinedStatus      = errors.New("undefined order status")
)
