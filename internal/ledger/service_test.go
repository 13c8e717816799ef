package ledger_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mgupta-labs/khata/internal/ledger"
	"github.com/mgupta-labs/khata/internal/party"
)

func TestService_CreateEntry(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name      string
		params    ledger.EntryParams
		setupMock func(m *ledger.MockRepository)
		wantTotal int64
		wantErr   error
	}

	tests := []testCase{
		{
			name: "DerivesTotalFromQuantityAndPrice",
			params: ledger.EntryParams{
				PartyID:  1,
				Item:     "Widget",
				Date:     date,
				Quantity: 3,
				Price:    50,
			},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					CreateEntry(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *ledger.Entry) error {
						e.ID = 1
						e.CreatedAt = time.Now()
						return nil
					})
			},
			wantTotal: 150,
		},
		{
			name: "MissingItem",
			params: ledger.EntryParams{
				PartyID:  1,
				Date:     date,
				Quantity: 1,
				Price:    10,
			},
			wantErr: ledger.ErrInvalid,
		},
		{
			name: "ZeroQuantity",
			params: ledger.EntryParams{
				PartyID: 1,
				Item:    "Widget",
				Date:    date,
				Price:   10,
			},
			wantErr: ledger.ErrInvalid,
		},
		{
			name: "NegativePrice",
			params: ledger.EntryParams{
				PartyID:  1,
				Item:     "Widget",
				Date:     date,
				Quantity: 1,
				Price:    -5,
			},
			wantErr: ledger.ErrInvalid,
		},
		{
			name: "MissingDate",
			params: ledger.EntryParams{
				PartyID:  1,
				Item:     "Widget",
				Quantity: 1,
				Price:    10,
			},
			wantErr: ledger.ErrInvalid,
		},
		{
			name: "TotalOverflows",
			params: ledger.EntryParams{
				PartyID:  1,
				Item:     "Widget",
				Date:     date,
				Quantity: math.MaxInt64,
				Price:    2,
			},
			wantErr: ledger.ErrInvalid,
		},
		{
			name: "UnknownParty",
			params: ledger.EntryParams{
				PartyID:  99,
				Item:     "Widget",
				Date:     date,
				Quantity: 1,
				Price:    10,
			},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					CreateEntry(gomock.Any(), gomock.Any()).
					Return(ledger.ErrPartyNotFound)
			},
			wantErr: ledger.ErrPartyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := ledger.NewService(repo)
			got, err := svc.CreateEntry(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, got.Total)
		})
	}
}

func TestService_CreatePayment(t *testing.T) {
	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name      string
		params    ledger.PaymentParams
		setupMock func(m *ledger.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: ledger.PaymentParams{
				PartyID: 1,
				Date:    date,
				Mode:    "cash",
				Amount:  50,
			},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					CreatePayment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *ledger.Payment) error {
						p.ID = 1
						return nil
					})
			},
		},
		{
			name: "MissingMode",
			params: ledger.PaymentParams{
				PartyID: 1,
				Date:    date,
				Amount:  50,
			},
			wantErr: ledger.ErrInvalid,
		},
		{
			name: "NegativeAmount",
			params: ledger.PaymentParams{
				PartyID: 1,
				Date:    date,
				Mode:    "cash",
				Amount:  -1,
			},
			wantErr: ledger.ErrInvalid,
		},
		{
			name: "UnknownParty",
			params: ledger.PaymentParams{
				PartyID: 99,
				Date:    date,
				Mode:    "cash",
				Amount:  50,
			},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					CreatePayment(gomock.Any(), gomock.Any()).
					Return(ledger.ErrPartyNotFound)
			},
			wantErr: ledger.ErrPartyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := ledger.NewService(repo)
			got, err := svc.CreatePayment(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(50), got.Amount)
		})
	}
}

func TestService_Balance(t *testing.T) {
	type testCase struct {
		name            string
		totals          ledger.Balance
		wantOutstanding int64
	}

	tests := []testCase{
		{
			name:            "NoRecordsIsZero",
			totals:          ledger.Balance{},
			wantOutstanding: 0,
		},
		{
			name:            "BilledMinusPaid",
			totals:          ledger.Balance{Billed: 200, Paid: 50},
			wantOutstanding: 150,
		},
		{
			name:            "OverpaidGoesNegative",
			totals:          ledger.Balance{Billed: 100, Paid: 120},
			wantOutstanding: -20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			repo.EXPECT().
				PartyTotals(gomock.Any(), int64(1)).
				Return(tt.totals, nil)

			svc := ledger.NewService(repo)
			got, err := svc.Balance(context.Background(), 1)

			require.NoError(t, err)
			assert.Equal(t, tt.wantOutstanding, got.Outstanding())
		})
	}
}

func TestService_Balances(t *testing.T) {
	t.Run("InvalidStatus", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := ledger.NewService(ledger.NewMockRepository(ctrl))

		_, err := svc.Balances(context.Background(), "supplier", 2)
		assert.ErrorIs(t, err, ledger.ErrInvalid)
	})

	t.Run("PreservesRepositoryOrder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ranked := []ledger.PartyBalance{
			{PartyID: 2, Name: "Masud", Balance: 300},
			{PartyID: 1, Name: "Rafiq", Balance: 120},
		}

		repo := ledger.NewMockRepository(ctrl)
		repo.EXPECT().
			PartyBalances(gomock.Any(), party.StatusWorker, 2).
			Return(ranked, nil)

		svc := ledger.NewService(repo)
		got, err := svc.Balances(context.Background(), party.StatusWorker, 2)

		require.NoError(t, err)
		assert.Equal(t, ranked, got)
	})

	t.Run("RepoError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		repo.EXPECT().
			PartyBalances(gomock.Any(), party.StatusClient, 0).
			Return(nil, errors.New("db error"))

		svc := ledger.NewService(repo)

		_, err := svc.Balances(context.Background(), party.StatusClient, 0)
		assert.Error(t, err)
	})
}
