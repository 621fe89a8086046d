package orderfile

import (
	"haven/internal/entities"
)

func fromDomain(order entities.Order) orderJSON {
	items := make([]itemJSON, len(order.Items))
	for i, item := range order.Items {
		items[i] = itemJSON{
			ID:           item.ID,
			Name:         item.Name,
			Price:        item.Price,
			CartQuantity: item.CartQuantity,
		}
	}

	history := make([]statusEntryJSON, len(order.StatusHistory))
	for i, entry := range order.StatusHistory {
		history[i] = statusEntryJSON{
			Status:    entry.Status.String(),
			Timestamp: entry.Timestamp,
		}
	}

	var deliveryTime *string
	if order.DeliveryTime != "" {
		dt := order.DeliveryTime
		deliveryTime = &dt
	}

	return orderJSON{
		ID:              order.ID,
		ShopID:          order.ShopID,
		CustomerID:      order.CustomerID,
		CustomerEmail:   order.CustomerEmail,
		Items:           items,
		Total:           order.Total,
		PaymentMethod:   string(order.PaymentMethod),
		DeliveryOption:  string(order.DeliveryOpt),
		DeliveryCity:    order.DeliveryCity,
		DeliveryAddress: order.DeliveryAddr,
		CryptoWallet:    order.CryptoWallet,
		Status:          order.Status.String(),
		StatusHistory:   history,
		DeliveryTime:    deliveryTime,
		Version:         order.Version,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func toDomain(record orderJSON) *entities.Order {
	items := make([]entities.OrderItem, len(record.Items))
	for i, item := range record.Items {
		items[i] = entities.OrderItem{
			ID:           item.ID,
			Name:         item.Name,
			Price:        item.Price,
			CartQuantity: item.CartQuantity,
		}
	}

	history := make([]entities.StatusEntry, len(record.StatusHistory))
	for i, entry := range record.StatusHistory {
		history[i] = entities.StatusEntry{
			Status:    entities.OrderStatusType(entry.Status),
			Timestamp: entry.Timestamp,
		}
	}

	deliveryTime := ""
	if record.DeliveryTime != nil {
		deliveryTime = *record.DeliveryTime
	}

	return &entities.Order{
		ID:            record.ID,
		ShopID:        record.ShopID,
		CustomerID:    record.CustomerID,
		CustomerEmail: record.CustomerEmail,
		Items:         items,
		Total:         record.Total,
		PaymentMethod: entities.PaymentMethodType(record.PaymentMethod),
		DeliveryOpt:   entities.DeliveryOptionType(record.DeliveryOption),
		DeliveryCity:  record.DeliveryCity,
		DeliveryAddr:  record.DeliveryAddress,
		CryptoWallet:  record.CryptoWallet,
		Status:        entities.OrderStatusType(record.Status),
		StatusHistory: history,
		DeliveryTime:  deliveryTime,
		Version:       record.Version,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}
