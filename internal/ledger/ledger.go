package ledger

import (
	"errors"
	"time"
)

// Entry is a billable line against a party: an order placed by a client
// or a piece of work done by a worker. Total is derived from quantity
// and price when the entry is written and never set independently.
type Entry struct {
	ID          int64
	PartyID     int64
	Item        string
	Date        time.Time
	Description string
	Quantity    int64
	Price       int64
	Total       int64
	CreatedAt   time.Time
}

// Payment is money received from a client or paid out to a worker.
type Payment struct {
	ID          int64
	PartyID     int64
	Date        time.Time
	Mode        string
	Description string
	Amount      int64
	CreatedAt   time.Time
}

// Balance holds the two sums a party's position is derived from.
// It is recomputed from the ledger on every read, never stored.
type Balance struct {
	Billed int64
	Paid   int64
}

// Outstanding is what the party still owes (client) or is owed (worker).
func (b Balance) Outstanding() int64 {
	return b.Billed - b.Paid
}

// PartyBalance is one row of a bulk balance listing.
type PartyBalance struct {
	PartyID int64
	Name    string
	Balance int64
}

var (
	ErrInvalid       = errors.New("invalid ledger record")
	ErrPartyNotFound = errors.New("party not found")
)
