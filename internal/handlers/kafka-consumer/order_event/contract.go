//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_event_test
package order_event

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

type Notifier interface {
	NotifyOrderEvent(ctx context.Context, event entities.OrderEvent) error
}
