package shop

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"haven/internal/entities"
	shopservice "haven/internal/service/shop"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Shop, error) {
	query := `SELECT id, owner_id, name, created_at FROM shops WHERE id = $1`

	var shopDB ShopDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&shopDB.ID,
			&shopDB.OwnerID,
			&shopDB.Name,
			&shopDB.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shopservice.ErrShopNotFound
		}
		return nil, fmt.Errorf("unexpected shop repository getbyid error: %w", err)
	}

	return ToDomain(&shopDB), nil
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Shop, error) {
	query := `SELECT id, owner_id, name, created_at FROM shops WHERE owner_id = $1 ORDER BY created_at`

	rows, err := r.querier.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("unexpected shop repository listbyowner error: %w", err)
	}
	defer rows.Close()

	shopsDB := make([]ShopDB, 0, 4)
	for rows.Next() {
		var shopDB ShopDB
		err := rows.Scan(
			&shopDB.ID,
			&shopDB.OwnerID,
			&shopDB.Name,
			&shopDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected shop repository listbyowner error: %w", err)
		}
		shopsDB = append(shopsDB, shopDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shop repository listbyowner error: %w", err)
	}

	return ToDomainList(shopsDB), nil
}
