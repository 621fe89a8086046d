package events

import "time"

type eventJSON struct {
	Type          string    `json:"type"`
	OrderID       string    `json:"orderId"`
	ShopID        string    `json:"shopId"`
	CustomerID    string    `json:"customerId,omitempty"`
	CustomerEmail string    `json:"customerEmail"`
	OldStatus     string    `json:"oldStatus,omitempty"`
	NewStatus     string    `json:"newStatus"`
	OccurredAt    time.Time `json:"occurredAt"`
}
