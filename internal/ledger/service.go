package ledger

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mgupta-labs/khata/internal/party"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	CreateEntry(ctx context.Context, e *Entry) error
	CreatePayment(ctx context.Context, p *Payment) error

	ListEntries(ctx context.Context, partyID int64) ([]*Entry, error)
	ListPayments(ctx context.Context, partyID int64) ([]*Payment, error)

	PartyTotals(ctx context.Context, partyID int64) (Balance, error)
	PartyBalances(ctx context.Context, status party.Status, limit int) ([]PartyBalance, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type EntryParams struct {
	PartyID     int64
	Item        string
	Date        time.Time
	Description string
	Quantity    int64
	Price       int64
}

func (p EntryParams) Validate() error {
	if p.PartyID <= 0 {
		return fmt.Errorf("%w: party id is required", ErrInvalid)
	}

	if strings.TrimSpace(p.Item) == "" {
		return fmt.Errorf("%w: item is required", ErrInvalid)
	}

	if p.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalid)
	}

	if p.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalid)
	}

	if p.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalid)
	}

	if p.Price > 0 && p.Quantity > math.MaxInt64/p.Price {
		return fmt.Errorf("%w: total is too large", ErrInvalid)
	}

	return nil
}

type PaymentParams struct {
	PartyID     int64
	Date        time.Time
	Mode        string
	Description string
	Amount      int64
}

func (p PaymentParams) Validate() error {
	if p.PartyID <= 0 {
		return fmt.Errorf("%w: party id is required", ErrInvalid)
	}

	if p.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalid)
	}

	if strings.TrimSpace(p.Mode) == "" {
		return fmt.Errorf("%w: payment mode is required", ErrInvalid)
	}

	if p.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalid)
	}

	return nil
}

// CreateEntry records a billable line for a party. The total is derived
// here, at write time, as quantity times price.
func (s *Service) CreateEntry(ctx context.Context, params EntryParams) (*Entry, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	e := &Entry{
		PartyID:     params.PartyID,
		Item:        params.Item,
		Date:        params.Date,
		Description: params.Description,
		Quantity:    params.Quantity,
		Price:       params.Price,
		Total:       params.Quantity * params.Price,
	}
	if err := s.repo.CreateEntry(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) CreatePayment(ctx context.Context, params PaymentParams) (*Payment, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	p := &Payment{
		PartyID:     params.PartyID,
		Date:        params.Date,
		Mode:        params.Mode,
		Description: params.Description,
		Amount:      params.Amount,
	}
	if err := s.repo.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) ListEntries(ctx context.Context, partyID int64) ([]*Entry, error) {
	return s.repo.ListEntries(ctx, partyID)
}

func (s *Service) ListPayments(ctx context.Context, partyID int64) ([]*Payment, error) {
	return s.repo.ListPayments(ctx, partyID)
}

// Balance computes a party's position from its ledger records. A party
// with no records has a zero balance; that is not an error.
func (s *Service) Balance(ctx context.Context, partyID int64) (Balance, error) {
	return s.repo.PartyTotals(ctx, partyID)
}

// Balances lists parties of the given status with their outstanding
// amounts, highest first, computed in a single aggregate query.
// limit <= 0 means no limit.
func (s *Service) Balances(ctx context.Context, status party.Status, limit int) ([]PartyBalance, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status must be %q or %q", ErrInvalid, party.StatusClient, party.StatusWorker)
	}

	return s.repo.PartyBalances(ctx, status, limit)
}
