//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"haven/internal/entities"
	"haven/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)

	// Update сохраняет заказ целиком и проверяет Version: при несовпадении
	// возвращает ErrVersionConflict, чтобы конкурентные записи не терялись.
	Update(ctx context.Context, orderEntity entities.Order) (*entities.Order, error)

	Delete(ctx context.Context, id string) error
	ListByShop(ctx context.Context, shopID string) ([]entities.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Order, error)
	ListPendingBefore(ctx context.Context, cutoff time.Time) ([]entities.Order, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

type DeliveryTimeFactory interface {
	CalculateDeliveryTime(history []entities.StatusEntry) string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
