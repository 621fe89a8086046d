//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shop_test
package shop

import (
	"context"

	"haven/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Shop, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Shop, error)
}
