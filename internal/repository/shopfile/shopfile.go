package shopfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"haven/internal/entities"
	shopservice "haven/internal/service/shop"
)

type shopJSON struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository читает shops.json целиком на каждый запрос, магазинами
// владеет другой сервис и файл для нас только справочник.
type Repository struct {
	path string
}

func New(path string) *Repository {
	return &Repository{
		path: path,
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Shop, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if record.ID == id {
			return toDomain(record), nil
		}
	}
	return nil, shopservice.ErrShopNotFound
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Shop, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Shop, 0, len(records))
	for _, record := range records {
		if record.OwnerID == ownerID {
			result = append(result, *toDomain(record))
		}
	}
	return result, nil
}

func (r *Repository) load(ctx context.Context) ([]shopJSON, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []shopJSON{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	if len(data) == 0 {
		return []shopJSON{}, nil
	}

	var records []shopJSON
	err = json.Unmarshal(data, &records)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}
	return records, nil
}

func toDomain(record shopJSON) *entities.Shop {
	return &entities.Shop{
		ID:        record.ID,
		OwnerID:   record.OwnerID,
		Name:      record.Name,
		CreatedAt: record.CreatedAt,
	}
}
