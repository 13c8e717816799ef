package report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgupta-labs/khata/internal/inventory"
	"github.com/mgupta-labs/khata/internal/ledger"
	"github.com/mgupta-labs/khata/internal/party"
	"github.com/mgupta-labs/khata/internal/report"
)

type fakeReportRepo struct {
	totals report.Totals
}

func (f *fakeReportRepo) Totals(ctx context.Context) (report.Totals, error) {
	return f.totals, nil
}

type fakeLedgerRepo struct {
	byStatus map[party.Status][]ledger.PartyBalance
}

func (f *fakeLedgerRepo) CreateEntry(ctx context.Context, e *ledger.Entry) error     { return nil }
func (f *fakeLedgerRepo) CreatePayment(ctx context.Context, p *ledger.Payment) error { return nil }

func (f *fakeLedgerRepo) ListEntries(ctx context.Context, partyID int64) ([]*ledger.Entry, error) {
	return nil, nil
}

func (f *fakeLedgerRepo) ListPayments(ctx context.Context, partyID int64) ([]*ledger.Payment, error) {
	return nil, nil
}

func (f *fakeLedgerRepo) PartyTotals(ctx context.Context, partyID int64) (ledger.Balance, error) {
	return ledger.Balance{}, nil
}

func (f *fakeLedgerRepo) PartyBalances(ctx context.Context, status party.Status, limit int) ([]ledger.PartyBalance, error) {
	return f.byStatus[status], nil
}

type fakeInventoryRepo struct {
	purchases []*inventory.Purchase
}

func (f *fakeInventoryRepo) CreatePurchase(ctx context.Context, p *inventory.Purchase) error {
	return nil
}

func (f *fakeInventoryRepo) ListPurchases(ctx context.Context, filter inventory.ListFilter) ([]*inventory.Purchase, error) {
	return f.purchases, nil
}

func (f *fakeInventoryRepo) CountPurchases(ctx context.Context, filter inventory.ListFilter) (int, error) {
	return len(f.purchases), nil
}

func (f *fakeInventoryRepo) PurchaseTotals(ctx context.Context, ref time.Time) (inventory.Totals, error) {
	return inventory.Totals{}, nil
}

func newTestHandler(rr *fakeReportRepo, lr *fakeLedgerRepo, ir *fakeInventoryRepo) *Handler {
	return NewHandler(
		report.NewService(rr),
		ledger.NewService(lr),
		inventory.NewService(ir),
	)
}

func TestHandler_Dashboard(t *testing.T) {
	t.Run("EmptyBooks", func(t *testing.T) {
		h := newTestHandler(&fakeReportRepo{}, &fakeLedgerRepo{}, &fakeInventoryRepo{})

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		rec := httptest.NewRecorder()
		h.Dashboard(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp dashboardResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Equal(t, summaryResponse{}, resp.Summary)
		assert.Empty(t, resp.TopClients)
		assert.Empty(t, resp.TopWorkers)
		assert.Empty(t, resp.RecentMaterials)
	})

	t.Run("Populated", func(t *testing.T) {
		h := newTestHandler(
			&fakeReportRepo{totals: report.Totals{
				ClientBilled:  200,
				ClientPaid:    50,
				WorkerPaid:    30,
				MaterialSpend: 20,
			}},
			&fakeLedgerRepo{byStatus: map[party.Status][]ledger.PartyBalance{
				party.StatusClient: {{PartyID: 1, Name: "Acme", Balance: 150}},
				party.StatusWorker: {{PartyID: 2, Name: "Rafiq", Balance: 70}},
			}},
			&fakeInventoryRepo{purchases: []*inventory.Purchase{
				{ID: 1, Item: "Steel rods", Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Quantity: 4, Price: 25, Amount: 100},
			}},
		)

		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		rec := httptest.NewRecorder()
		h.Dashboard(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp dashboardResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Equal(t, int64(200), resp.Summary.TotalSale)
		assert.Equal(t, int64(150), resp.Summary.DueAmount)
		assert.Equal(t, int64(50), resp.Summary.TotalExpenditure)
		assert.Equal(t, int64(0), resp.Summary.TotalProfit)

		require.Len(t, resp.TopClients, 1)
		assert.Equal(t, "Acme", resp.TopClients[0].Name)

		require.Len(t, resp.TopWorkers, 1)
		assert.Equal(t, "Rafiq", resp.TopWorkers[0].Name)

		require.Len(t, resp.RecentMaterials, 1)
		assert.Equal(t, "2024-03-10", resp.RecentMaterials[0].Date)
	})
}
