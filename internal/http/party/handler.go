package party

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mgupta-labs/khata/internal/ledger"
	"github.com/mgupta-labs/khata/internal/party"
)

type Handler struct {
	parties *party.Service
	ledger  *ledger.Service
}

func NewHandler(parties *party.Service, ledgerSvc *ledger.Service) *Handler {
	return &Handler{parties: parties, ledger: ledgerSvc}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/by-name/{name}", h.getByName)
}

// DetailRoutes hang off /parties/{partyID}.
func (h *Handler) DetailRoutes(r chi.Router) {
	r.Get("/", h.get)
}

type createPartyRequest struct {
	Name   string `json:"name" validate:"required"`
	Status string `json:"status" validate:"required,oneof=client worker"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createPartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.parties.Create(r.Context(), party.CreateParams{
		Name:   req.Name,
		Status: party.Status(req.Status),
	})
	if err != nil {
		switch {
		case errors.Is(err, party.ErrInvalid):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, party.ErrExists):
			http.Error(w, "party already exists", http.StatusConflict)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	status := party.Status(r.URL.Query().Get("status"))
	if status == "" {
		status = party.StatusClient
	}

	search := r.URL.Query().Get("search")

	page := 1
	if s := r.URL.Query().Get("page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			page = n
		}
	}

	result, err := h.parties.List(r.Context(), status, search, page)
	if err != nil {
		if errors.Is(err, party.ErrInvalid) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	// One aggregate query for every balance on the page.
	balances, err := h.ledger.Balances(r.Context(), status, 0)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toListResponse(result, balances)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "partyID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.parties.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, party.ErrNotFound) {
			http.Error(w, "party not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	h.renderDetail(w, r, p)
}

func (h *Handler) getByName(w http.ResponseWriter, r *http.Request) {
	p, err := h.parties.GetByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		if errors.Is(err, party.ErrNotFound) {
			http.Error(w, "party not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	h.renderDetail(w, r, p)
}

func (h *Handler) renderDetail(w http.ResponseWriter, r *http.Request, p *party.Party) {
	balance, err := h.ledger.Balance(r.Context(), p.ID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toDetailResponse(p, balance)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
