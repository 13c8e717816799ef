package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mgupta-labs/khata/internal/report"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Totals(ctx context.Context) (report.Totals, error) {
	query := `
		SELECT
			COALESCE((
				SELECT SUM(e.total)
				FROM entries e
				JOIN parties p ON p.id = e.party_id
				WHERE p.status = 'client'
			), 0),
			COALESCE((
				SELECT SUM(pm.amount)
				FROM payments pm
				JOIN parties p ON p.id = pm.party_id
				WHERE p.status = 'client'
			), 0),
			COALESCE((
				SELECT SUM(pm.amount)
				FROM payments pm
				JOIN parties p ON p.id = pm.party_id
				WHERE p.status = 'worker'
			), 0),
			COALESCE((SELECT SUM(amount) FROM material_purchases), 0)
	`

	var t report.Totals

	err := s.db.QueryRowContext(ctx, query).Scan(
		&t.ClientBilled, &t.ClientPaid, &t.WorkerPaid, &t.MaterialSpend,
	)
	if err != nil {
		return report.Totals{}, fmt.Errorf("summing totals: %w", err)
	}

	return t, nil
}
