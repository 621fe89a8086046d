package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"haven/internal/entities"
	"haven/internal/repository"
	orderservice "haven/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, shop_id, customer_id, customer_email, items, total,
	payment_method, delivery_option, delivery_city, delivery_address,
	crypto_wallet, status, status_history, delivery_time, version,
	created_at, updated_at`

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

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	orderDB, err := FromDomain(&orderEntity)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	query := `INSERT INTO orders (id, shop_id, customer_id, customer_email, items,
		total, payment_method, delivery_option, delivery_city, delivery_address,
		crypto_wallet, status, status_history, delivery_time, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err = r.querier.Exec(
		ctx,
		query,
		orderDB.ID,
		orderDB.ShopID,
		orderDB.CustomerID,
		orderDB.CustomerEmail,
		orderDB.Items,
		orderDB.Total,
		orderDB.PaymentMethod,
		orderDB.DeliveryOpt,
		orderDB.DeliveryCity,
		orderDB.DeliveryAddr,
		orderDB.CryptoWallet,
		orderDB.Status,
		orderDB.StatusHistory,
		orderDB.DeliveryTime,
		orderDB.Version,
		orderDB.CreatedAt,
		orderDB.UpdatedAt,
	)
	if err != nil {
		return nil, wrapStoreErr(ctx, fmt.Errorf("unexpected order repository create error: %w", err))
	}

	return ToDomain(orderDB)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id = $1`, orderColumns)

	row := r.querier.QueryRow(ctx, query, id)
	orderDB, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, wrapStoreErr(ctx, fmt.Errorf("unexpected order repository getbyid error: %w", err))
	}

	return ToDomain(orderDB)
}

// Update пишет заказ целиком с проверкой версии. Несовпадение версии значит,
// что заказ успел измениться под другим писателем - такое обновление теряться
// молча не должно.
func (r *Repository) Update(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	orderDB, err := FromDomain(&orderEntity)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	builder := qb.
		Update("orders").
		Set("customer_email", orderDB.CustomerEmail).
		Set("status", orderDB.Status).
		Set("status_history", orderDB.StatusHistory).
		Set("delivery_time", orderDB.DeliveryTime).
		Set("version", orderDB.Version+1).
		Set("updated_at", orderDB.UpdatedAt).
		Where(sq.Eq{"id": orderDB.ID, "version": orderDB.Version}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	row := r.querier.QueryRow(ctx, query, args...)
	updatedDB, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMissedUpdate(ctx, orderDB.ID)
		}
		return nil, wrapStoreErr(ctx, fmt.Errorf("unexpected order repository update error: %w", err))
	}

	return ToDomain(updatedDB)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.querier.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return wrapStoreErr(ctx, fmt.Errorf("unexpected order repository delete error: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return orderservice.ErrOrderNotFound
	}
	return nil
}

func (r *Repository) ListByShop(ctx context.Context, shopID string) ([]entities.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE shop_id = $1 ORDER BY created_at DESC`, orderColumns)
	return r.list(ctx, query, shopID)
}

// ListByCustomer принимает и id покупателя, и email - витрина шлет то, что
// у нее есть про пользователя.
func (r *Repository) ListByCustomer(ctx context.Context, customerID string) ([]entities.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders
		WHERE customer_id = $1 OR customer_email = $1
		ORDER BY created_at DESC`, orderColumns)
	return r.list(ctx, query, customerID)
}

func (r *Repository) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]entities.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders
		WHERE status = $1 AND created_at < $2
		ORDER BY created_at`, orderColumns)
	return r.list(ctx, query, entities.OrderPending.String(), cutoff)
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]entities.Order, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapStoreErr(ctx, fmt.Errorf("unexpected order repository list error: %w", err))
	}
	defer rows.Close()

	ordersDB := make([]OrderDB, 0, 8)
	for rows.Next() {
		orderDB, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		ordersDB = append(ordersDB, *orderDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, wrapStoreErr(ctx, fmt.Errorf("unexpected order repository list error: %w", err))
	}

	return ToDomainList(ordersDB)
}

func (r *Repository) classifyMissedUpdate(ctx context.Context, id string) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return wrapStoreErr(ctx, fmt.Errorf("unexpected order repository update error: %w", err))
	}
	if !exists {
		return orderservice.ErrOrderNotFound
	}
	return orderservice.ErrVersionConflict
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderDB OrderDB
	err := row.Scan(
		&orderDB.ID,
		&orderDB.ShopID,
		&orderDB.CustomerID,
		&orderDB.CustomerEmail,
		&orderDB.Items,
		&orderDB.Total,
		&orderDB.PaymentMethod,
		&orderDB.DeliveryOpt,
		&orderDB.DeliveryCity,
		&orderDB.DeliveryAddr,
		&orderDB.CryptoWallet,
		&orderDB.Status,
		&orderDB.StatusHistory,
		&orderDB.DeliveryTime,
		&orderDB.Version,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderDB, nil
}

// wrapStoreErr помечает таймауты и обрывы соединения как недоступность
// хранилища, хендлеры отдают на это 500 без деталей.
func wrapStoreErr(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
		return fmt.Errorf("%w: %v", orderservice.ErrStoreUnavailable, err)
	}
	if repository.IsConnectionError(err) {
		return fmt.Errorf("%w: %v", orderservice.ErrStoreUnavailable, err)
	}
	return err
}
