package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/mgupta-labs/khata/internal/inventory"
	"github.com/mgupta-labs/khata/internal/ledger"
	"github.com/mgupta-labs/khata/internal/party"
	"github.com/mgupta-labs/khata/internal/report"
)

// The dashboard shows the two highest-due parties of each kind and the
// three latest material purchases, matching the landing page.
const (
	topParties      = 2
	recentPurchases = 3
)

type Handler struct {
	reports   *report.Service
	ledger    *ledger.Service
	inventory *inventory.Service
}

func NewHandler(reports *report.Service, ledgerSvc *ledger.Service, inventorySvc *inventory.Service) *Handler {
	return &Handler{reports: reports, ledger: ledgerSvc, inventory: inventorySvc}
}

type summaryResponse struct {
	TotalSale            int64 `json:"total_sale"`
	TotalPaymentReceived int64 `json:"total_payment_received"`
	DueAmount            int64 `json:"due_amount"`
	TotalWorkerPayment   int64 `json:"total_worker_payment"`
	TotalMaterialPayment int64 `json:"total_raw_material_payment"`
	TotalExpenditure     int64 `json:"total_expenditure"`
	TotalProfit          int64 `json:"total_profit"`
}

type balanceRow struct {
	PartyID int64  `json:"party_id"`
	Name    string `json:"name"`
	Balance int64  `json:"balance"`
}

type purchaseRow struct {
	ID       int64  `json:"id"`
	Item     string `json:"item"`
	Date     string `json:"date"`
	Quantity int64  `json:"quantity"`
	Price    int64  `json:"price"`
	Amount   int64  `json:"amount"`
}

type dashboardResponse struct {
	Summary         summaryResponse `json:"summary"`
	TopClients      []balanceRow    `json:"top_clients"`
	TopWorkers      []balanceRow    `json:"top_workers"`
	RecentMaterials []purchaseRow   `json:"recent_materials"`
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.reports.Summary(ctx)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	clients, err := h.ledger.Balances(ctx, party.StatusClient, topParties)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	workers, err := h.ledger.Balances(ctx, party.StatusWorker, topParties)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	materials, err := h.inventory.Recent(ctx, recentPurchases)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := dashboardResponse{
		Summary: summaryResponse{
			TotalSale:            summary.TotalSale,
			TotalPaymentReceived: summary.TotalPaymentReceived,
			DueAmount:            summary.DueAmount,
			TotalWorkerPayment:   summary.TotalWorkerPayment,
			TotalMaterialPayment: summary.TotalMaterialPayment,
			TotalExpenditure:     summary.TotalExpenditure,
			TotalProfit:          summary.TotalProfit,
		},
		TopClients:      toBalanceRows(clients),
		TopWorkers:      toBalanceRows(workers),
		RecentMaterials: toPurchaseRows(materials),
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toBalanceRows(balances []ledger.PartyBalance) []balanceRow {
	rows := make([]balanceRow, len(balances))
	for i, b := range balances {
		rows[i] = balanceRow{PartyID: b.PartyID, Name: b.Name, Balance: b.Balance}
	}

	return rows
}

func toPurchaseRows(purchases []*inventory.Purchase) []purchaseRow {
	rows := make([]purchaseRow, len(purchases))
	for i, p := range purchases {
		rows[i] = purchaseRow{
			ID:       p.ID,
			Item:     p.Item,
			Date:     p.Date.Format(time.DateOnly),
			Quantity: p.Quantity,
			Price:    p.Price,
			Amount:   p.Amount,
		}
	}

	return rows
}
