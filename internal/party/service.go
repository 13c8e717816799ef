package party

import (
	"context"
	"fmt"
	"strings"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=party
type Repository interface {
	CreateParty(ctx context.Context, p *Party) error
	GetParty(ctx context.Context, id int64) (*Party, error)
	GetPartyByName(ctx context.Context, name string) (*Party, error)
	ListParties(ctx context.Context, filter ListFilter) ([]*Party, error)
	CountParties(ctx context.Context, filter ListFilter) (int, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// PerPage is the page size of party list views.
const PerPage = 8

type CreateParams struct {
	Name   string
	Status Status
}

func (p CreateParams) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}

	if !p.Status.Valid() {
		return fmt.Errorf("%w: status must be %q or %q", ErrInvalid, StatusClient, StatusWorker)
	}

	return nil
}

type ListFilter struct {
	Status Status
	Search string
	Limit  int
	Offset int
}

type ListResult struct {
	Parties []*Party
	Total   int
	Page    int
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Party, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	p := &Party{
		Name:   strings.TrimSpace(params.Name),
		Status: params.Status,
	}
	if err := s.repo.CreateParty(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Party, error) {
	return s.repo.GetParty(ctx, id)
}

func (s *Service) GetByName(ctx context.Context, name string) (*Party, error) {
	return s.repo.GetPartyByName(ctx, name)
}

// List returns one page of parties with the given status, name-ordered,
// optionally narrowed by a case-insensitive name search.
func (s *Service) List(ctx context.Context, status Status, search string, page int) (*ListResult, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status must be %q or %q", ErrInvalid, StatusClient, StatusWorker)
	}

	if page < 1 {
		page = 1
	}

	filter := ListFilter{
		Status: status,
		Search: strings.TrimSpace(search),
		Limit:  PerPage,
		Offset: (page - 1) * PerPage,
	}

	parties, err := s.repo.ListParties(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountParties(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ListResult{Parties: parties, Total: total, Page: page}, nil
}
