package entities

import "time"

type OrderEventType string

const (
	EventOrderCreated    OrderEventType = "order.created"
	EventStatusChanged   OrderEventType = "order.status.changed"
	EventPendingReminder OrderEventType = "order.pending.reminder"
)

func (t OrderEventType) String() string {
	return string(t)
}

// OrderEvent то, что уезжает внешнему диспетчеру уведомлений.
type OrderEvent struct {
	Type          OrderEventType
	OrderID       string
	ShopID        string
	CustomerID    string
	CustomerEmail string
	OldStatus     string
	NewStatus     string
	OccurredAt    time.Time
}
