package ledger

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mgupta-labs/khata/internal/ledger"
	"github.com/mgupta-labs/khata/internal/party"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Routes hang off /parties/{partyID}.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/entries", h.createEntry)
	r.Get("/entries", h.listEntries)
	r.Post("/payments", h.createPayment)
	r.Get("/payments", h.listPayments)
	r.Get("/balance", h.balance)
}

func partyID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "partyID"), 10, 64)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalid):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ledger.ErrPartyNotFound):
		http.Error(w, "party not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

type createEntryRequest struct {
	Item        string `json:"item" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Description string `json:"description"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
	Price       *int64 `json:"price" validate:"required,gte=0"`
}

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	pid, err := partyID(r)
	if err != nil {
		http.Error(w, "invalid party id", http.StatusBadRequest)
		return
	}

	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	e, err := h.svc.CreateEntry(r.Context(), ledger.EntryParams{
		PartyID:     pid,
		Item:        req.Item,
		Date:        date,
		Description: req.Description,
		Quantity:    req.Quantity,
		Price:       *req.Price,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toEntryResponse(e)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	pid, err := partyID(r)
	if err != nil {
		http.Error(w, "invalid party id", http.StatusBadRequest)
		return
	}

	entries, err := h.svc.ListEntries(r.Context(), pid)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toEntryResponseList(entries)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createPaymentRequest struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Mode        string `json:"mode" validate:"required"`
	Description string `json:"description"`
	Amount      *int64 `json:"amount" validate:"required,gte=0"`
}

func (h *Handler) createPayment(w http.ResponseWriter, r *http.Request) {
	pid, err := partyID(r)
	if err != nil {
		http.Error(w, "invalid party id", http.StatusBadRequest)
		return
	}

	var req createPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	p, err := h.svc.CreatePayment(r.Context(), ledger.PaymentParams{
		PartyID:     pid,
		Date:        date,
		Mode:        req.Mode,
		Description: req.Description,
		Amount:      *req.Amount,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toPaymentResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) {
	pid, err := partyID(r)
	if err != nil {
		http.Error(w, "invalid party id", http.StatusBadRequest)
		return
	}

	payments, err := h.svc.ListPayments(r.Context(), pid)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPaymentResponseList(payments)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request) {
	pid, err := partyID(r)
	if err != nil {
		http.Error(w, "invalid party id", http.StatusBadRequest)
		return
	}

	b, err := h.svc.Balance(r.Context(), pid)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toBalanceResponse(b)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Balances serves the ranked bulk balance list, e.g.
// GET /balances?status=worker&limit=5.
func (h *Handler) Balances(w http.ResponseWriter, r *http.Request) {
	status := party.Status(r.URL.Query().Get("status"))
	if status == "" {
		status = party.StatusClient
	}

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}

	balances, err := h.svc.Balances(r.Context(), status, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPartyBalanceList(balances)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
