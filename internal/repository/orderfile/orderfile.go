package orderfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"haven/internal/entities"
	orderservice "haven/internal/service/order"
)

// Repository файловое хранилище заказов: весь файл читается, правится и
// пишется обратно целиком. Файл один на все заказы, поэтому цикл
// read-modify-write сериализуется одним мьютексом, иначе параллельные
// записи теряют чужие правки.
type Repository struct {
	path string
	mu   sync.Mutex
}

func New(path string) *Repository {
	return &Repository{
		path: path,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if record.ID == orderEntity.ID {
			return nil, fmt.Errorf("order %s already exists: %w", orderEntity.ID, orderservice.ErrVersionConflict)
		}
	}

	created := fromDomain(orderEntity)
	records = append(records, created)

	err = r.store(ctx, records)
	if err != nil {
		return nil, err
	}
	return toDomain(created), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if record.ID == id {
			return toDomain(record), nil
		}
	}
	return nil, orderservice.ErrOrderNotFound
}

// Update заменяет запись только при совпадении версии, записанная версия
// инкрементируется как и в sql-хранилище.
func (r *Repository) Update(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i, record := range records {
		if record.ID != orderEntity.ID {
			continue
		}
		if record.Version != orderEntity.Version {
			return nil, orderservice.ErrVersionConflict
		}

		updated := fromDomain(orderEntity)
		updated.Version = orderEntity.Version + 1
		records[i] = updated

		err = r.store(ctx, records)
		if err != nil {
			return nil, err
		}
		return toDomain(updated), nil
	}

	return nil, orderservice.ErrOrderNotFound
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i, record := range records {
		if record.ID == id {
			records = append(records[:i], records[i+1:]...)
			return r.store(ctx, records)
		}
	}
	return orderservice.ErrOrderNotFound
}

func (r *Repository) ListByShop(ctx context.Context, shopID string) ([]entities.Order, error) {
	return r.list(ctx, func(record orderJSON) bool {
		return record.ShopID == shopID
	})
}

func (r *Repository) ListByCustomer(ctx context.Context, customerID string) ([]entities.Order, error) {
	return r.list(ctx, func(record orderJSON) bool {
		return record.CustomerID == customerID || record.CustomerEmail == customerID
	})
}

func (r *Repository) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]entities.Order, error) {
	return r.list(ctx, func(record orderJSON) bool {
		return record.Status == string(entities.OrderPending) && record.CreatedAt.Before(cutoff)
	})
}

func (r *Repository) list(ctx context.Context, keep func(orderJSON) bool) ([]entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(records))
	for _, record := range records {
		if keep(record) {
			result = append(result, *toDomain(record))
		}
	}
	return result, nil
}

// load читает весь файл, отсутствующий файл означает пустое хранилище.
func (r *Repository) load(ctx context.Context) ([]orderJSON, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", orderservice.ErrStoreUnavailable, err)
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []orderJSON{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %w", orderservice.ErrStoreUnavailable, r.path, err)
	}

	if len(data) == 0 {
		return []orderJSON{}, nil
	}

	var records []orderJSON
	err = json.Unmarshal(data, &records)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", orderservice.ErrStoreUnavailable, r.path, err)
	}
	return records, nil
}

// store пишет во временный файл рядом и подменяет оригинал через rename,
// чтобы упавшая запись не оставила обрезанный json.
func (r *Repository) store(ctx context.Context, records []orderJSON) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", orderservice.ErrStoreUnavailable, err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode orders: %w", orderservice.ErrStoreUnavailable, err)
	}

	dir := filepath.Dir(r.path)
	err = os.MkdirAll(dir, 0o755)
	if err != nil {
		return fmt.Errorf("%w: mkdir %s: %w", orderservice.ErrStoreUnavailable, dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".orders-*.json")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", orderservice.ErrStoreUnavailable, err)
	}

	_, err = tmp.Write(data)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %w", orderservice.ErrStoreUnavailable, tmp.Name(), err)
	}

	err = tmp.Close()
	if err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: close %s: %w", orderservice.ErrStoreUnavailable, tmp.Name(), err)
	}

	err = os.Rename(tmp.Name(), r.path)
	if err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: rename %s: %w", orderservice.ErrStoreUnavailable, tmp.Name(), err)
	}
	return nil
}
