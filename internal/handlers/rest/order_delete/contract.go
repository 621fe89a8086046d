//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_delete_test
package order_delete

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
	DeleteOrder(ctx context.Context, orderID string) error
}

type ShopService interface {
	GetShop(ctx context.Context, id string) (*entities.Shop, error)
}
