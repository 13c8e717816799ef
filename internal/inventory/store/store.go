package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mgupta-labs/khata/internal/inventory"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreatePurchase(ctx context.Context, p *inventory.Purchase) error {
	query := `
		INSERT INTO material_purchases (item, purchased_on, quantity, price, amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.Item,
		p.Date,
		p.Quantity,
		p.Price,
		p.Amount,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating purchase: %w", err)
	}

	return nil
}

func (s *Store) ListPurchases(ctx context.Context, filter inventory.ListFilter) ([]*inventory.Purchase, error) {
	query := `
		SELECT id, item, purchased_on, quantity, price, amount, created_at
		FROM material_purchases
	`

	var args []any

	if filter.Search != "" {
		query += " WHERE item ILIKE '%' || $1 || '%'"
		args = append(args, filter.Search)
	}

	query += " ORDER BY purchased_on DESC, id DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing purchases: %w", err)
	}
	defer rows.Close()

	var purchases []*inventory.Purchase

	for rows.Next() {
		var p inventory.Purchase
		if err := rows.Scan(
			&p.ID, &p.Item, &p.Date, &p.Quantity, &p.Price, &p.Amount, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning purchase: %w", err)
		}

		purchases = append(purchases, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating purchase rows: %w", err)
	}

	return purchases, nil
}

func (s *Store) CountPurchases(ctx context.Context, filter inventory.ListFilter) (int, error) {
	query := `SELECT COUNT(*) FROM material_purchases`

	var args []any

	if filter.Search != "" {
		query += " WHERE item ILIKE '%' || $1 || '%'"
		args = append(args, filter.Search)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting purchases: %w", err)
	}

	return count, nil
}

// PurchaseTotals sums the whole inventory ledger and the slice of it
// falling in ref's calendar month.
func (s *Store) PurchaseTotals(ctx context.Context, ref time.Time) (inventory.Totals, error) {
	query := `
		SELECT
			COALESCE(SUM(amount), 0),
			COALESCE(SUM(amount) FILTER (
				WHERE date_trunc('month', purchased_on) = date_trunc('month', $1::date)
			), 0)
		FROM material_purchases
	`

	var t inventory.Totals
	if err := s.db.QueryRowContext(ctx, query, ref).Scan(&t.InventoryValue, &t.MonthlyPurchase); err != nil {
		return inventory.Totals{}, fmt.Errorf("summing purchases: %w", err)
	}

	return t, nil
}
