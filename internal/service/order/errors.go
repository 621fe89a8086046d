package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidItems          = errors.New("order requires at least one item with positive quantity")
	ErrInvalidTotal          = errors.New("invalid order total")
	ErrInvalidPayment        = errors.New("invalid payment method")
	ErrInvalidDelivery       = errors.New("invalid delivery option")
	ErrInvalidStatus         = errors.New("invalid order status")

	ErrOrderNotFound    = errors.New("order not found")
	ErrVersionConflict  = errors.New("order was modified concurrently")
	ErrStoreUnavailable = errors.New("order store unavailable")
)
