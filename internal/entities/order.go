package entities

import "time"

type Order struct {
	ID            string
	ShopID        string
	CustomerID    string
	CustomerEmail string
	Items         []OrderItem
	Total         float64
	PaymentMethod PaymentMethodType
	DeliveryOpt   DeliveryOptionType
	DeliveryCity  string
	DeliveryAddr  string
	CryptoWallet  string
	Status        OrderStatusType
	StatusHistory []StatusEntry
	DeliveryTime  string
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderItem снимок позиции каталога на момент покупки, после создания заказа
// не изменяется.
type OrderItem struct {
	ID           string
	Name         string
	Price        float64
	CartQuantity int
}

type StatusEntry struct {
	Status    OrderStatusType
	Timestamp time.Time
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderAccepted   OrderStatusType = "accepted"
	OrderPreparing  OrderStatusType = "preparing"
	OrderDelivering OrderStatusType = "delivering"
	OrderDelivered  OrderStatusType = "delivered"
	OrderCancelled  OrderStatusType = "cancelled"
	OrderRefused    OrderStatusType = "refused"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type PaymentMethodType string

const (
	PaymentCreditCard PaymentMethodType = "credit-card"
	PaymentBitcoin    PaymentMethodType = "bitcoin"
	PaymentCash       PaymentMethodType = "cash"
)

func (p PaymentMethodType) String() string {
	return string(p)
}

type DeliveryOptionType string

// Имена опций доставки сохранены как в витрине: Ship2 - доставка по адресу,
// Deaddrop - закладка.
const (
	DeliveryShip     DeliveryOptionType = "Ship2"
	DeliveryDeaddrop DeliveryOptionType = "Deaddrop"
)

func (d DeliveryOptionType) String() string {
	return string(d)
}

// OrderDraft поля, которые принимает чекаут; остальное заполняет сервис.
type OrderDraft struct {
	ShopID        string
	CustomerID    string
	CustomerEmail string
	Items         []OrderItem
	Total         float64
	PaymentMethod PaymentMethodType
	DeliveryOpt   DeliveryOptionType
	DeliveryCity  string
	DeliveryAddr  string
	CryptoWallet  string
}
