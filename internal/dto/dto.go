package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type OrderItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	CartQuantity int     `json:"cartQuantity"`
}

type StatusEntry struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type Order struct {
	ID              string        `json:"id"`
	ShopID          string        `json:"shopId"`
	CustomerID      string        `json:"customerId,omitempty"`
	CustomerEmail   string        `json:"customerEmail"`
	Items           []OrderItem   `json:"items"`
	Total           float64       `json:"total"`
	PaymentMethod   string        `json:"paymentMethod"`
	DeliveryOption  string        `json:"deliveryOption"`
	DeliveryCity    string        `json:"deliveryCity,omitempty"`
	DeliveryAddress string        `json:"deliveryAddress,omitempty"`
	CryptoWallet    string        `json:"cryptoWallet,omitempty"`
	Status          string        `json:"status"`
	StatusHistory   []StatusEntry `json:"statusHistory"`
	DeliveryTime    *string       `json:"deliveryTime"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

type OrderCreate struct {
	ShopID          string      `json:"shopId"`
	CustomerID      string      `json:"customerId"`
	CustomerEmail   string      `json:"customerEmail"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
	PaymentMethod   string      `json:"paymentMethod"`
	DeliveryOption  string      `json:"deliveryOption"`
	DeliveryCity    string      `json:"deliveryCity"`
	DeliveryAddress string      `json:"deliveryAddress"`
	CryptoWallet    string      `json:"cryptoWallet"`
}

type OrderStatusUpdate struct {
	Status       string  `json:"status"`
	CustomStatus *string `json:"customStatus,omitempty"`
}

type OwnerSummary struct {
	PendingOrders int     `json:"pendingOrders"`
	TotalOrders   int     `json:"totalOrders"`
	RecentOrders  []Order `json:"recentOrders"`
}

type Message struct {
	Message string `json:"message"`
}
