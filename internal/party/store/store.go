package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

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

// Expected column order: id, name, status, created_at
func scanParty(s scanner) (*party.Party, error) {
	var p party.Party

	var statusStr string

	if err := s.Scan(&p.ID, &p.Name, &statusStr, &p.CreatedAt); err != nil {
		return nil, err
	}

	p.Status = party.Status(statusStr)

	return &p, nil
}

const uniqueViolation = "23505"

func (s *Store) CreateParty(ctx context.Context, p *party.Party) error {
	query := `
		INSERT INTO parties (name, status)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, p.Name, p.Status).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return party.ErrExists
		}

		return fmt.Errorf("creating party: %w", err)
	}

	return nil
}

func (s *Store) GetParty(ctx context.Context, id int64) (*party.Party, error) {
	query := `SELECT id, name, status, created_at FROM parties WHERE id = $1`

	p, err := scanParty(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, party.ErrNotFound
		}

		return nil, fmt.Errorf("getting party: %w", err)
	}

	return p, nil
}

func (s *Store) GetPartyByName(ctx context.Context, name string) (*party.Party, error) {
	query := `SELECT id, name, status, created_at FROM parties WHERE name = $1`

	p, err := scanParty(s.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, party.ErrNotFound
		}

		return nil, fmt.Errorf("getting party by name: %w", err)
	}

	return p, nil
}

func (s *Store) ListParties(ctx context.Context, filter party.ListFilter) ([]*party.Party, error) {
	query := `SELECT id, name, status, created_at FROM parties WHERE status = $1`

	args := []any{filter.Status}

	if filter.Search != "" {
		query += fmt.Sprintf(" AND name ILIKE '%%' || $%d || '%%'", len(args)+1)
		args = append(args, filter.Search)
	}

	query += " ORDER BY name ASC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing parties: %w", err)
	}
	defer rows.Close()

	var parties []*party.Party

	for rows.Next() {
		p, err := scanParty(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning party: %w", err)
		}

		parties = append(parties, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating party rows: %w", err)
	}

	return parties, nil
}

func (s *Store) CountParties(ctx context.Context, filter party.ListFilter) (int, error) {
	query := `SELECT COUNT(*) FROM parties WHERE status = $1`

	args := []any{filter.Status}

	if filter.Search != "" {
		query += " AND name ILIKE '%' || $2 || '%'"
		args = append(args, filter.Search)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting parties: %w", err)
	}

	return count, nil
}
