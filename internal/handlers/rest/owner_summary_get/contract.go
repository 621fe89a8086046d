//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=owner_summary_get_test
package owner_summary_get

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

type Service interface {
	OwnerSummary(ctx context.Context, userID string) entities.OwnerSummary
}
