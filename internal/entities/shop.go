package entities

import "time"

// Shop внешняя сущность, сервису заказов нужны только ссылки на владельца.
type Shop struct {
	ID        string
	OwnerID   string
	Name      string
	CreatedAt time.Time
}

type OwnerSummary struct {
	PendingOrders int
	TotalOrders   int
	RecentOrders  []Order
}
