package shop

import "time"

type ShopDB struct {
	ID        string
	OwnerID   string
	Name      string
	CreatedAt time.Time
}
