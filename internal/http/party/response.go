package party

import (
	"time"

	"github.com/mgupta-labs/khata/internal/ledger"
	"github.com/mgupta-labs/khata/internal/party"
)

type partyResponse struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Status    party.Status `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}

func toResponse(p *party.Party) partyResponse {
	return partyResponse{
		ID:        p.ID,
		Name:      p.Name,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}

type partyListItem struct {
	ID      int64        `json:"id"`
	Name    string       `json:"name"`
	Status  party.Status `json:"status"`
	Balance int64        `json:"balance"`
}

type listResponse struct {
	Parties []partyListItem `json:"parties"`
	Total   int             `json:"total"`
	Page    int             `json:"page"`
	PerPage int             `json:"per_page"`
}

func toListResponse(result *party.ListResult, balances []ledger.PartyBalance) listResponse {
	byID := make(map[int64]int64, len(balances))
	for _, b := range balances {
		byID[b.PartyID] = b.Balance
	}

	items := make([]partyListItem, len(result.Parties))
	for i, p := range result.Parties {
		items[i] = partyListItem{
			ID:      p.ID,
			Name:    p.Name,
			Status:  p.Status,
			Balance: byID[p.ID],
		}
	}

	return listResponse{
		Parties: items,
		Total:   result.Total,
		Page:    result.Page,
		PerPage: party.PerPage,
	}
}

type detailResponse struct {
	partyResponse

	Billed  int64 `json:"billed"`
	Paid    int64 `json:"paid"`
	Balance int64 `json:"balance"`
}

func toDetailResponse(p *party.Party, b ledger.Balance) detailResponse {
	return detailResponse{
		partyResponse: toResponse(p),
		Billed:        b.Billed,
		Paid:          b.Paid,
		Balance:       b.Outstanding(),
	}
}
