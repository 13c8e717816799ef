package report

import (
	"context"
)

type Repository interface {
	Totals(ctx context.Context) (Totals, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Summary recomputes the dashboard figures from the store. With no data
// at all every figure is zero.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	t, err := s.repo.Totals(ctx)
	if err != nil {
		return nil, err
	}

	expenditure := t.WorkerPaid + t.MaterialSpend

	return &Summary{
		TotalSale:            t.ClientBilled,
		TotalPaymentReceived: t.ClientPaid,
		DueAmount:            t.ClientBilled - t.ClientPaid,
		TotalWorkerPayment:   t.WorkerPaid,
		TotalMaterialPayment: t.MaterialSpend,
		TotalExpenditure:     expenditure,
		TotalProfit:          t.ClientPaid - expenditure,
	}, nil
}
