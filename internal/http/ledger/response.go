package ledger

import (
	"time"

	"github.com/mgupta-labs/khata/internal/ledger"
)

type entryResponse struct {
	ID          int64     `json:"id"`
	PartyID     int64     `json:"party_id"`
	Item        string    `json:"item"`
	Date        string    `json:"date"`
	Description string    `json:"description,omitempty"`
	Quantity    int64     `json:"quantity"`
	Price       int64     `json:"price"`
	Total       int64     `json:"total"`
	CreatedAt   time.Time `json:"created_at"`
}

func toEntryResponse(e *ledger.Entry) entryResponse {
	return entryResponse{
		ID:          e.ID,
		PartyID:     e.PartyID,
		Item:        e.Item,
		Date:        e.Date.Format(time.DateOnly),
		Description: e.Description,
		Quantity:    e.Quantity,
		Price:       e.Price,
		Total:       e.Total,
		CreatedAt:   e.CreatedAt,
	}
}

func toEntryResponseList(entries []*ledger.Entry) []entryResponse {
	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toEntryResponse(e)
	}

	return resp
}

type paymentResponse struct {
	ID          int64     `json:"id"`
	PartyID     int64     `json:"party_id"`
	Date        string    `json:"date"`
	Mode        string    `json:"mode"`
	Description string    `json:"description,omitempty"`
	Amount      int64     `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

func toPaymentResponse(p *ledger.Payment) paymentResponse {
	return paymentResponse{
		ID:          p.ID,
		PartyID:     p.PartyID,
		Date:        p.Date.Format(time.DateOnly),
		Mode:        p.Mode,
		Description: p.Description,
		Amount:      p.Amount,
		CreatedAt:   p.CreatedAt,
	}
}

func toPaymentResponseList(payments []*ledger.Payment) []paymentResponse {
	resp := make([]paymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = toPaymentResponse(p)
	}

	return resp
}

type balanceResponse struct {
	Billed  int64 `json:"billed"`
	Paid    int64 `json:"paid"`
	Balance int64 `json:"balance"`
}

func toBalanceResponse(b ledger.Balance) balanceResponse {
	return balanceResponse{
		Billed:  b.Billed,
		Paid:    b.Paid,
		Balance: b.Outstanding(),
	}
}

type partyBalanceResponse struct {
	PartyID int64  `json:"party_id"`
	Name    string `json:"name"`
	Balance int64  `json:"balance"`
}

func toPartyBalanceList(balances []ledger.PartyBalance) []partyBalanceResponse {
	resp := make([]partyBalanceResponse, len(balances))
	for i, b := range balances {
		resp[i] = partyBalanceResponse{
			PartyID: b.PartyID,
			Name:    b.Name,
			Balance: b.Balance,
		}
	}

	return resp
}
