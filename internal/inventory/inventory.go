package inventory

import (
	"errors"
	"time"
)

// Purchase is one raw-material acquisition. It belongs to no party;
// the purchases form a standalone inventory ledger. Amount is derived
// from quantity and price at write time.
type Purchase struct {
	ID        int64
	Item      string
	Date      time.Time
	Quantity  int64
	Price     int64
	Amount    int64
	CreatedAt time.Time
}

// Totals summarizes the inventory ledger: everything ever purchased and
// the spend within one calendar month.
type Totals struct {
	InventoryValue  int64
	MonthlyPurchase int64
}

var ErrInvalid = errors.New("invalid purchase")
