package dto

import "haven/internal/entities"

func FromOrder(order entities.Order) Order {
	items := make([]OrderItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItem{
			ID:           item.ID,
			Name:         item.Name,
			Price:        item.Price,
			CartQuantity: item.CartQuantity,
		}
	}

	history := make([]StatusEntry, len(order.StatusHistory))
	for i, entry := range order.StatusHistory {
		history[i] = StatusEntry{
			Status:    entry.Status.String(),
			Timestamp: entry.Timestamp,
		}
	}

	var deliveryTime *string
	if order.DeliveryTime != "" {
		dt := order.DeliveryTime
		deliveryTime = &dt
	}

	return Order{
		ID:              order.ID,
		ShopID:          order.ShopID,
		CustomerID:      order.CustomerID,
		CustomerEmail:   order.CustomerEmail,
		Items:           items,
		Total:           order.Total,
		PaymentMethod:   order.PaymentMethod.String(),
		DeliveryOption:  order.DeliveryOpt.String(),
		DeliveryCity:    order.DeliveryCity,
		DeliveryAddress: order.DeliveryAddr,
		CryptoWallet:    order.CryptoWallet,
		Status:          order.Status.String(),
		StatusHistory:   history,
		DeliveryTime:    deliveryTime,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func FromOrderList(orders []entities.Order) []Order {
	result := make([]Order, len(orders))
	for i, order := range orders {
		result[i] = FromOrder(order)
	}
	return result
}
