//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_status_put_test
package order_status_put

import (
	"context"

	"haven/internal/entities"
	"haven/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type OrderService interface {
	GetOrder(ctx context.Context, orderID string) (*entities.Order, error)
	Transition(ctx context.Context, orderID string, newStatus entities.OrderStatusType, customStatus string) (*entities.Order, error)
}

type ShopService interface {
	GetShop(ctx context.Context, id string) (*entities.Shop, error)
}
