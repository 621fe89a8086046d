package order

import (
	"strings"

	"haven/internal/entities"
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidStatus(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderPending,
		entities.OrderAccepted,
		entities.OrderPreparing,
		entities.OrderDelivering,
		entities.OrderDelivered,
		entities.OrderCancelled,
		entities.OrderRefused:
		return true
	default:
		return false
	}
}

func isValidPayment(method entities.PaymentMethodType) bool {
	switch method {
	case entities.PaymentCreditCard, entities.PaymentBitcoin, entities.PaymentCash:
		return true
	default:
		return false
	}
}

func isValidDelivery(option entities.DeliveryOptionType) bool {
	switch option {
	case entities.DeliveryShip, entities.DeliveryDeaddrop:
		return true
	default:
		return false
	}
}

func isValidItems(items []entities.OrderItem) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if item.CartQuantity < 1 || item.Price < 0 {
			return false
		}
	}
	return true
}
