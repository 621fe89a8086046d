//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_post_test
package order_post

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
	CreateOrder(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error)
}

type ShopService interface {
	GetShop(ctx context.Context, id string) (*entities.Shop, error)
}
