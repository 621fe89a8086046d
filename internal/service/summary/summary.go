package summary

import (
	"context"
	"sort"

	"haven/internal/entities"
	"haven/pkg/logger"
)

const recentOrdersLimit = 5

type Service struct {
	shops  ShopRepository
	orders OrderRepository
	log    serviceLogger
}

func New(log serviceLogger, shops ShopRepository, orders OrderRepository) *Service {
	return &Service{
		shops:  shops,
		orders: orders,
		log:    log.With(),
	}
}

// OwnerSummary собирает сводку по всем магазинам владельца. Контракт для
// дашборда жесткий: форма ответа одна и та же всегда, любая ошибка ниже по
// стеку схлопывается в нулевую сводку и не доходит до вызывающего.
func (s *Service) OwnerSummary(ctx context.Context, userID string) entities.OwnerSummary {
	zeroed := entities.OwnerSummary{RecentOrders: []entities.Order{}}

	shops, err := s.shops.ListByOwner(ctx, userID)
	if err != nil {
		s.log.With(
			logger.NewField("error", err),
			logger.NewField("user", userID),
		).Warn("owner summary: shop lookup failed, returning zeroed summary")
		return zeroed
	}

	if len(shops) == 0 {
		return zeroed
	}

	allOrders := make([]entities.Order, 0, 16)
	for _, shop := range shops {
		orders, err := s.orders.ListByShop(ctx, shop.ID)
		if err != nil {
			s.log.With(
				logger.NewField("error", err),
				logger.NewField("user", userID),
				logger.NewField("shop", shop.ID),
			).Warn("owner summary: order lookup failed, returning zeroed summary")
			return zeroed
		}
		allOrders = append(allOrders, orders...)
	}

	pending := 0
	for _, orderEntity := range allOrders {
		if orderEntity.Status == entities.OrderPending {
			pending++
		}
	}

	sort.Slice(allOrders, func(i, j int) bool {
		return allOrders[i].CreatedAt.After(allOrders[j].CreatedAt)
	})

	recent := allOrders
	if len(recent) > recentOrdersLimit {
		recent = recent[:recentOrdersLimit]
	}

	return entities.OwnerSummary{
		PendingOrders: pending,
		TotalOrders:   len(allOrders),
		RecentOrders:  recent,
	}
}
