// Package persistence holds the Postgres-backed audit archive. The pending
// ledger itself is in-memory; only fulfilled orders reach the database.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"charity_token/internal/domain"
	"charity_token/internal/domain/entity"
	"charity_token/pkg/errcodes"
)

type OrderArchiveRepository struct {
	db *sqlx.DB
}

func NewOrderArchiveRepository(db *sqlx.DB) *OrderArchiveRepository {
	return &OrderArchiveRepository{db: db}
}

// Record stores a fulfilled order. Re-recording the same id is rejected by
// the primary key; order ids are never reused so this only happens on a
// replayed write.
func (r *OrderArchiveRepository) Record(ctx context.Context, order entity.Order, fulfilledAt time.Time) error {
	query := `
		INSERT INTO fulfilled_orders (id, recipient, description, fulfilled_at)
		VALUES (:id, :recipient, :description, :fulfilled_at)`

	params := map[string]any{
		"id":           order.ID.String(),
		"recipient":    order.Recipient.String(),
		"description":  order.GiftDescription,
		"fulfilled_at": fulfilledAt,
	}

	if _, err := r.db.NamedExecContext(ctx, query, params); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to insert fulfilled order")
	}

	return nil
}

// ListRecent returns the most recently fulfilled orders, newest first.
func (r *OrderArchiveRepository) ListRecent(ctx context.Context, limit int) ([]entity.ArchivedOrder, error) {
	query := `
		SELECT id, recipient, description, fulfilled_at
		FROM fulfilled_orders
		ORDER BY fulfilled_at DESC
		LIMIT $1`

	var schemas []fulfilledOrderSchema
	if err := r.db.SelectContext(ctx, &schemas, query, limit); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list fulfilled orders")
	}

	orders := make([]entity.ArchivedOrder, 0, len(schemas))
	for _, s := range schemas {
		orders = append(orders, s.toDomain())
	}

	return orders, nil
}

// Count reports the archive size, used by readiness diagnostics.
func (r *OrderArchiveRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM fulfilled_orders`); err != nil {
		return 0, fmt.Errorf("count fulfilled orders: %w", err)
	}

	return count, nil
}
