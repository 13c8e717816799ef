package store_test

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgupta-labs/khata/internal/database"
	"github.com/mgupta-labs/khata/internal/ledger"
	"github.com/mgupta-labs/khata/internal/ledger/store"
	"github.com/mgupta-labs/khata/internal/party"
)

// testDB returns a migrated, emptied database, or skips the test when no
// database is configured.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.New(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))

	_, err = db.Exec("TRUNCATE parties, entries, payments, material_purchases RESTART IDENTITY CASCADE")
	require.NoError(t, err)

	return db
}

func createParty(t *testing.T, db *sql.DB, name string, status party.Status) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(
		"INSERT INTO parties (name, status) VALUES ($1, $2) RETURNING id",
		name, string(status),
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func addEntry(t *testing.T, s *store.Store, partyID int64, date time.Time, total int64) {
	t.Helper()

	err := s.CreateEntry(context.Background(), &ledger.Entry{
		PartyID:  partyID,
		Item:     "Bricks",
		Date:     date,
		Quantity: 1,
		Price:    total,
		Total:    total,
	})
	require.NoError(t, err)
}

func addPayment(t *testing.T, s *store.Store, partyID int64, date time.Time, amount int64) {
	t.Helper()

	err := s.CreatePayment(context.Background(), &ledger.Payment{
		PartyID: partyID,
		Date:    date,
		Mode:    "cash",
		Amount:  amount,
	})
	require.NoError(t, err)
}

func TestStore_CreateEntry_UnknownParty(t *testing.T) {
	db := testDB(t)
	s := store.New(db)

	err := s.CreateEntry(context.Background(), &ledger.Entry{
		PartyID:  9999,
		Item:     "Bricks",
		Date:     time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Quantity: 1,
		Price:    10,
		Total:    10,
	})

	assert.ErrorIs(t, err, ledger.ErrPartyNotFound)
}

func TestStore_CreatePayment_UnknownParty(t *testing.T) {
	db := testDB(t)
	s := store.New(db)

	err := s.CreatePayment(context.Background(), &ledger.Payment{
		PartyID: 9999,
		Date:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Mode:    "cash",
		Amount:  10,
	})

	assert.ErrorIs(t, err, ledger.ErrPartyNotFound)
}

func TestStore_ListEntries_NewestFirst(t *testing.T) {
	db := testDB(t)
	s := store.New(db)

	pid := createParty(t, db, "Rafiq", party.StatusClient)

	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	addEntry(t, s, pid, jan, 10)
	addEntry(t, s, pid, mar, 30)
	addEntry(t, s, pid, feb, 20)
	// Same date as the March entry; the later insert must come first.
	addEntry(t, s, pid, mar, 40)

	entries, err := s.ListEntries(context.Background(), pid)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	totals := make([]int64, 0, len(entries))
	for _, e := range entries {
		totals = append(totals, e.Total)
	}

	assert.Equal(t, []int64{40, 30, 20, 10}, totals)
}

func TestStore_PartyBalances(t *testing.T) {
	db := testDB(t)
	s := store.New(db)

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	rafiq := createParty(t, db, "Rafiq", party.StatusClient)   // 150 billed - 50 paid = 100
	masud := createParty(t, db, "Masud", party.StatusClient)   // 300 billed = 300
	karim := createParty(t, db, "Karim", party.StatusClient)   // 100 billed = 100, ties Rafiq
	salam := createParty(t, db, "Salam", party.StatusClient)   // no records = 0
	jobbar := createParty(t, db, "Jobbar", party.StatusWorker) // wrong status, excluded

	addEntry(t, s, rafiq, date, 150)
	addPayment(t, s, rafiq, date, 50)
	addEntry(t, s, masud, date, 300)
	addEntry(t, s, karim, date, 100)
	addEntry(t, s, jobbar, date, 500)

	t.Run("RankedWithStableTies", func(t *testing.T) {
		got, err := s.PartyBalances(context.Background(), party.StatusClient, 0)
		require.NoError(t, err)

		// Highest first; the Rafiq/Karim tie breaks on the lower id.
		want := []ledger.PartyBalance{
			{PartyID: masud, Name: "Masud", Balance: 300},
			{PartyID: rafiq, Name: "Rafiq", Balance: 100},
			{PartyID: karim, Name: "Karim", Balance: 100},
			{PartyID: salam, Name: "Salam", Balance: 0},
		}
		assert.Equal(t, want, got)
	})

	t.Run("MatchesPartyTotals", func(t *testing.T) {
		got, err := s.PartyBalances(context.Background(), party.StatusClient, 0)
		require.NoError(t, err)

		for _, b := range got {
			totals, err := s.PartyTotals(context.Background(), b.PartyID)
			require.NoError(t, err)
			assert.Equal(t, totals.Outstanding(), b.Balance, "party %d", b.PartyID)
		}
	})

	t.Run("Limit", func(t *testing.T) {
		got, err := s.PartyBalances(context.Background(), party.StatusClient, 2)
		require.NoError(t, err)

		require.Len(t, got, 2)
		assert.Equal(t, masud, got[0].PartyID)
		assert.Equal(t, rafiq, got[1].PartyID)
	})

	t.Run("WorkerStatus", func(t *testing.T) {
		got, err := s.PartyBalances(context.Background(), party.StatusWorker, 0)
		require.NoError(t, err)

		require.Len(t, got, 1)
		assert.Equal(t, jobbar, got[0].PartyID)
		assert.Equal(t, int64(500), got[0].Balance)
	})
}

func TestStore_PartyTotals_NoRecords(t *testing.T) {
	db := testDB(t)
	s := store.New(db)

	got, err := s.PartyTotals(context.Background(), 9999)
	require.NoError(t, err)

	assert.Equal(t, ledger.Balance{}, got)
}
