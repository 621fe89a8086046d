package order

import (
	"encoding/json"
	"fmt"

	"haven/internal/entities"
)

func FromDomain(o *entities.Order) (*OrderDB, error) {
	if o == nil {
		return nil, nil
	}

	items := make([]OrderItemJSON, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemJSON{
			ID:           item.ID,
			Name:         item.Name,
			Price:        item.Price,
			CartQuantity: item.CartQuantity,
		})
	}
	itemsRaw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshal order items: %w", err)
	}

	history := make([]StatusEntryJSON, 0, len(o.StatusHistory))
	for _, entry := range o.StatusHistory {
		history = append(history, StatusEntryJSON{
			Status:    entry.Status.String(),
			Timestamp: entry.Timestamp,
		})
	}
	historyRaw, err := json.Marshal(history)
	if err != nil {
		return nil, fmt.Errorf("marshal status history: %w", err)
	}

	orderDB := &OrderDB{
		ID:            o.ID,
		ShopID:        o.ShopID,
		CustomerEmail: o.CustomerEmail,
		Items:         itemsRaw,
		Total:         o.Total,
		PaymentMethod: o.PaymentMethod.String(),
		DeliveryOpt:   o.DeliveryOpt.String(),
		Status:        o.Status.String(),
		StatusHistory: historyRaw,
		Version:       o.Version,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}

	if o.CustomerID != "" {
		customerID := o.CustomerID
		orderDB.CustomerID = &customerID
	}
	if o.DeliveryCity != "" {
		city := o.DeliveryCity
		orderDB.DeliveryCity = &city
	}
	if o.DeliveryAddr != "" {
		addr := o.DeliveryAddr
		orderDB.DeliveryAddr = &addr
	}
	if o.CryptoWallet != "" {
		wallet := o.CryptoWallet
		orderDB.CryptoWallet = &wallet
	}
	if o.DeliveryTime != "" {
		deliveryTime := o.DeliveryTime
		orderDB.DeliveryTime = &deliveryTime
	}

	return orderDB, nil
}

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	var itemsJSON []OrderItemJSON
	if len(o.Items) > 0 {
		if err := json.Unmarshal(o.Items, &itemsJSON); err != nil {
			return nil, fmt.Errorf("unmarshal order items: %w", err)
		}
	}
	items := make([]entities.OrderItem, 0, len(itemsJSON))
	for _, item := range itemsJSON {
		items = append(items, entities.OrderItem{
			ID:           item.ID,
			Name:         item.Name,
			Price:        item.Price,
			CartQuantity: item.CartQuantity,
		})
	}

	var historyJSON []StatusEntryJSON
	if len(o.StatusHistory) > 0 {
		if err := json.Unmarshal(o.StatusHistory, &historyJSON); err != nil {
			return nil, fmt.Errorf("unmarshal status history: %w", err)
		}
	}
	history := make([]entities.StatusEntry, 0, len(historyJSON))
	for _, entry := range historyJSON {
		history = append(history, entities.StatusEntry{
			Status:    entities.OrderStatusType(entry.Status),
			Timestamp: entry.Timestamp,
		})
	}

	orderEntity := &entities.Order{
		ID:            o.ID,
		ShopID:        o.ShopID,
		CustomerEmail: o.CustomerEmail,
		Items:         items,
		Total:         o.Total,
		PaymentMethod: entities.PaymentMethodType(o.PaymentMethod),
		DeliveryOpt:   entities.DeliveryOptionType(o.DeliveryOpt),
		Status:        entities.OrderStatusType(o.Status),
		StatusHistory: history,
		Version:       o.Version,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}

	if o.CustomerID != nil {
		orderEntity.CustomerID = *o.CustomerID
	}
	if o.DeliveryCity != nil {
		orderEntity.DeliveryCity = *o.DeliveryCity
	}
	if o.DeliveryAddr != nil {
		orderEntity.DeliveryAddr = *o.DeliveryAddr
	}
	if o.CryptoWallet != nil {
		orderEntity.CryptoWallet = *o.CryptoWallet
	}
	if o.DeliveryTime != nil {
		orderEntity.DeliveryTime = *o.DeliveryTime
	}

	return orderEntity, nil
}

func ToDomainList(ordersDB []OrderDB) ([]entities.Order, error) {
	if len(ordersDB) == 0 {
		return []entities.Order{}, nil
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		orderEntity, err := ToDomain(&orderDB)
		if err != nil {
			return nil, err
		}
		result[i] = *orderEntity
	}
	return result, nil
}
