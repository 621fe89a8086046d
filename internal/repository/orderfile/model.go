package orderfile

import "time"

// orderJSON формат записи в orders.json, поля в camelCase как на проводе.
type orderJSON struct {
	ID              string            `json:"id"`
	ShopID          string            `json:"shopId"`
	CustomerID      string            `json:"customerId,omitempty"`
	CustomerEmail   string            `json:"customerEmail"`
	Items           []itemJSON        `json:"items"`
	Total           float64           `json:"total"`
	PaymentMethod   string            `json:"paymentMethod"`
	DeliveryOption  string            `json:"deliveryOption"`
	DeliveryCity    string            `json:"deliveryCity,omitempty"`
	DeliveryAddress string            `json:"deliveryAddress,omitempty"`
	CryptoWallet    string            `json:"cryptoWallet,omitempty"`
	Status          string            `json:"status"`
	StatusHistory   []statusEntryJSON `json:"statusHistory"`
	DeliveryTime    *string           `json:"deliveryTime,omitempty"`
	Version         int64             `json:"version"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

type itemJSON struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	CartQuantity int     `json:"cartQuantity"`
}

type statusEntryJSON struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
