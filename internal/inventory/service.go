package inventory

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=inventory
type Repository interface {
	CreatePurchase(ctx context.Context, p *Purchase) error
	ListPurchases(ctx context.Context, filter ListFilter) ([]*Purchase, error)
	CountPurchases(ctx context.Context, filter ListFilter) (int, error)
	PurchaseTotals(ctx context.Context, ref time.Time) (Totals, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// PerPage is the page size of the material list view.
const PerPage = 10

type CreateParams struct {
	Item     string
	Date     time.Time
	Quantity int64
	Price    int64
}

func (p CreateParams) Validate() error {
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
		return fmt.Errorf("%w: amount is too large", ErrInvalid)
	}

	return nil
}

type ListFilter struct {
	Search string
	Limit  int
	Offset int
}

type ListResult struct {
	Purchases []*Purchase
	Total     int
	Page      int
	Totals    Totals
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Purchase, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	p := &Purchase{
		Item:     params.Item,
		Date:     params.Date,
		Quantity: params.Quantity,
		Price:    params.Price,
		Amount:   params.Quantity * params.Price,
	}
	if err := s.repo.CreatePurchase(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// List returns one page of purchases, newest first, optionally narrowed
// by a case-insensitive item search, together with the inventory totals
// for the current calendar month.
func (s *Service) List(ctx context.Context, search string, page int) (*ListResult, error) {
	if page < 1 {
		page = 1
	}

	filter := ListFilter{
		Search: strings.TrimSpace(search),
		Limit:  PerPage,
		Offset: (page - 1) * PerPage,
	}

	purchases, err := s.repo.ListPurchases(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountPurchases(ctx, filter)
	if err != nil {
		return nil, err
	}

	totals, err := s.repo.PurchaseTotals(ctx, s.now())
	if err != nil {
		return nil, err
	}

	return &ListResult{Purchases: purchases, Total: total, Page: page, Totals: totals}, nil
}

// Recent returns the n most recent purchases for the dashboard.
func (s *Service) Recent(ctx context.Context, n int) ([]*Purchase, error) {
	return s.repo.ListPurchases(ctx, ListFilter{Limit: n})
}
