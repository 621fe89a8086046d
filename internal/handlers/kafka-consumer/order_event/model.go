package order_event

import "time"

type orderEvent struct {
	Type          string    `json:"type"`
	OrderID       string    `json:"orderId"`
	ShopID        string    `json:"shopId"`
	CustomerID    string    `json:"customerId"`
	CustomerEmail string    `json:"customerEmail"`
	OldStatus     string    `json:"oldStatus"`
	NewStatus     string    `json:"newStatus"`
	OccurredAt    time.Time `json:"occurredAt"`
}
