package shop

import (
	"context"
	"fmt"
	"strings"

	"haven/internal/entities"
)

// Shop читающий фасад над внешней сущностью магазина: сервису заказов от
// магазина нужны только владелец и существование.
type Shop struct {
	repository Repository
}

func New(repository Repository) *Shop {
	return &Shop{
		repository: repository,
	}
}

func (s *Shop) GetShop(ctx context.Context, id string) (*entities.Shop, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidShopID
	}

	shopEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shop: %w", err)
	}
	return shopEntity, nil
}

func (s *Shop) ListByOwner(ctx context.Context, ownerID string) ([]entities.Shop, error) {
	shops, err := s.repository.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list shops by owner: %w", err)
	}
	return shops, nil
}
