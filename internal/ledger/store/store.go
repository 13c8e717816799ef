package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mgupta-labs/khata/internal/ledger"
	"github.com/mgupta-labs/khata/internal/party"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const (
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// mapInsertError translates constraint failures into domain errors so
// callers see a missing party or a rejected value, not a pg error code.
// The failed insert leaves no row behind either way.
func mapInsertError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolation:
			return ledger.ErrPartyNotFound
		case checkViolation:
			return fmt.Errorf("%w: %s", ledger.ErrInvalid, pgErr.ConstraintName)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}

func (s *Store) CreateEntry(ctx context.Context, e *ledger.Entry) error {
	query := `
		INSERT INTO entries (party_id, item, entry_date, description, quantity, price, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.PartyID,
		e.Item,
		e.Date,
		e.Description,
		e.Quantity,
		e.Price,
		e.Total,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return mapInsertError("creating entry", err)
	}

	return nil
}

func (s *Store) CreatePayment(ctx context.Context, p *ledger.Payment) error {
	query := `
		INSERT INTO payments (party_id, paid_on, mode, description, amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.PartyID,
		p.Date,
		p.Mode,
		p.Description,
		p.Amount,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return mapInsertError("creating payment", err)
	}

	return nil
}

// Expected column order: id, party_id, item, entry_date, description, quantity, price, total, created_at
func scanEntry(s scanner) (*ledger.Entry, error) {
	var e ledger.Entry

	if err := s.Scan(
		&e.ID, &e.PartyID, &e.Item, &e.Date, &e.Description,
		&e.Quantity, &e.Price, &e.Total, &e.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &e, nil
}

func (s *Store) ListEntries(ctx context.Context, partyID int64) ([]*ledger.Entry, error) {
	query := `
		SELECT id, party_id, item, entry_date, description, quantity, price, total, created_at
		FROM entries
		WHERE party_id = $1
		ORDER BY entry_date DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, partyID)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var entries []*ledger.Entry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entry rows: %w", err)
	}

	return entries, nil
}

func (s *Store) ListPayments(ctx context.Context, partyID int64) ([]*ledger.Payment, error) {
	query := `
		SELECT id, party_id, paid_on, mode, description, amount, created_at
		FROM payments
		WHERE party_id = $1
		ORDER BY paid_on DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, partyID)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	var payments []*ledger.Payment

	for rows.Next() {
		var p ledger.Payment
		if err := rows.Scan(
			&p.ID, &p.PartyID, &p.Date, &p.Mode, &p.Description, &p.Amount, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payment rows: %w", err)
	}

	return payments, nil
}

func (s *Store) PartyTotals(ctx context.Context, partyID int64) (ledger.Balance, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(total) FROM entries WHERE party_id = $1), 0),
			COALESCE((SELECT SUM(amount) FROM payments WHERE party_id = $1), 0)
	`

	var b ledger.Balance
	if err := s.db.QueryRowContext(ctx, query, partyID).Scan(&b.Billed, &b.Paid); err != nil {
		return ledger.Balance{}, fmt.Errorf("summing party totals: %w", err)
	}

	return b, nil
}

// PartyBalances computes every balance for one status in a single query
// instead of one round trip per party. Ties sort by id so the order is
// stable across renders.
func (s *Store) PartyBalances(ctx context.Context, status party.Status, limit int) ([]ledger.PartyBalance, error) {
	query := `
		SELECT
			p.id,
			p.name,
			COALESCE(e.billed, 0) - COALESCE(pm.paid, 0) AS balance
		FROM parties p
		LEFT JOIN (
			SELECT party_id, SUM(total) AS billed
			FROM entries
			GROUP BY party_id
		) e ON e.party_id = p.id
		LEFT JOIN (
			SELECT party_id, SUM(amount) AS paid
			FROM payments
			GROUP BY party_id
		) pm ON pm.party_id = p.id
		WHERE p.status = $1
		ORDER BY balance DESC, p.id ASC
	`

	args := []any{status}

	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing party balances: %w", err)
	}
	defer rows.Close()

	var balances []ledger.PartyBalance

	for rows.Next() {
		var b ledger.PartyBalance
		if err := rows.Scan(&b.PartyID, &b.Name, &b.Balance); err != nil {
			return nil, fmt.Errorf("scanning party balance: %w", err)
		}

		balances = append(balances, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating balance rows: %w", err)
	}

	return balances, nil
}
