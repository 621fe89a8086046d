//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=summary_test
package summary

import (
	"context"

	"haven/internal/entities"
	"haven/pkg/logger"
)

type ShopRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Shop, error)
}

type OrderRepository interface {
	ListByShop(ctx context.Context, shopID string) ([]entities.Order, error)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
