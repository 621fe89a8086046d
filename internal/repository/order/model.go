package order

import "time"

type OrderDB struct {
	ID            string
	ShopID        string
	CustomerID    *string
	CustomerEmail string
	Items         []byte
	Total         float64
	PaymentMethod string
	DeliveryOpt   string
	DeliveryCity  *string
	DeliveryAddr  *string
	CryptoWallet  *string
	Status        string
	StatusHistory []byte
	DeliveryTime  *string
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderItemJSON struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	CartQuantity int     `json:"cartQuantity"`
}

type StatusEntryJSON struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
