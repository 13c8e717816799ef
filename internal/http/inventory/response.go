package inventory

import (
	"time"

	"github.com/mgupta-labs/khata/internal/inventory"
)

type purchaseResponse struct {
	ID        int64     `json:"id"`
	Item      string    `json:"item"`
	Date      string    `json:"date"`
	Quantity  int64     `json:"quantity"`
	Price     int64     `json:"price"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(p *inventory.Purchase) purchaseResponse {
	return purchaseResponse{
		ID:        p.ID,
		Item:      p.Item,
		Date:      p.Date.Format(time.DateOnly),
		Quantity:  p.Quantity,
		Price:     p.Price,
		Amount:    p.Amount,
		CreatedAt: p.CreatedAt,
	}
}

func toResponseList(purchases []*inventory.Purchase) []purchaseResponse {
	resp := make([]purchaseResponse, len(purchases))
	for i, p := range purchases {
		resp[i] = toResponse(p)
	}

	return resp
}

type listResponse struct {
	Materials       []purchaseResponse `json:"materials"`
	Total           int                `json:"total"`
	Page            int                `json:"page"`
	PerPage         int                `json:"per_page"`
	InventoryValue  int64              `json:"total_inventory_value"`
	MonthlyPurchase int64              `json:"monthly_purchase"`
}

func toListResponse(result *inventory.ListResult) listResponse {
	return listResponse{
		Materials:       toResponseList(result.Purchases),
		Total:           result.Total,
		Page:            result.Page,
		PerPage:         inventory.PerPage,
		InventoryValue:  result.Totals.InventoryValue,
		MonthlyPurchase: result.Totals.MonthlyPurchase,
	}
}
