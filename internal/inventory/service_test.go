package inventory_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mgupta-labs/khata/internal/inventory"
)

func TestService_Create(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name       string
		params     inventory.CreateParams
		setupMock  func(m *inventory.MockRepository)
		wantAmount int64
		wantErr    error
	}

	tests := []testCase{
		{
			name: "DerivesAmount",
			params: inventory.CreateParams{
				Item:     "Steel rods",
				Date:     date,
				Quantity: 4,
				Price:    25,
			},
			setupMock: func(m *inventory.MockRepository) {
				m.EXPECT().
					CreatePurchase(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *inventory.Purchase) error {
						p.ID = 1
						return nil
					})
			},
			wantAmount: 100,
		},
		{
			name: "MissingItem",
			params: inventory.CreateParams{
				Date:     date,
				Quantity: 1,
				Price:    10,
			},
			wantErr: inventory.ErrInvalid,
		},
		{
			name: "ZeroQuantity",
			params: inventory.CreateParams{
				Item:  "Steel rods",
				Date:  date,
				Price: 10,
			},
			wantErr: inventory.ErrInvalid,
		},
		{
			name: "MissingDate",
			params: inventory.CreateParams{
				Item:     "Steel rods",
				Quantity: 1,
				Price:    10,
			},
			wantErr: inventory.ErrInvalid,
		},
		{
			name: "AmountOverflows",
			params: inventory.CreateParams{
				Item:     "Steel rods",
				Date:     date,
				Quantity: math.MaxInt64,
				Price:    2,
			},
			wantErr: inventory.ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := inventory.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := inventory.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, got.Amount)
		})
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wantFilter := inventory.ListFilter{
		Search: "steel",
		Limit:  inventory.PerPage,
		Offset: inventory.PerPage,
	}

	purchases := []*inventory.Purchase{
		{ID: 2, Item: "Steel rods", Amount: 100},
		{ID: 1, Item: "steel sheets", Amount: 80},
	}

	repo := inventory.NewMockRepository(ctrl)
	repo.EXPECT().
		ListPurchases(gomock.Any(), wantFilter).
		Return(purchases, nil)
	repo.EXPECT().
		CountPurchases(gomock.Any(), wantFilter).
		Return(12, nil)
	repo.EXPECT().
		PurchaseTotals(gomock.Any(), gomock.Any()).
		Return(inventory.Totals{InventoryValue: 180, MonthlyPurchase: 100}, nil)

	svc := inventory.NewService(repo)
	got, err := svc.List(context.Background(), " steel ", 2)

	require.NoError(t, err)
	assert.Equal(t, purchases, got.Purchases)
	assert.Equal(t, 12, got.Total)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, int64(180), got.Totals.InventoryValue)
	assert.Equal(t, int64(100), got.Totals.MonthlyPurchase)
}

func TestService_Recent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := inventory.NewMockRepository(ctrl)
	repo.EXPECT().
		ListPurchases(gomock.Any(), inventory.ListFilter{Limit: 3}).
		Return([]*inventory.Purchase{{ID: 3}, {ID: 2}, {ID: 1}}, nil)

	svc := inventory.NewService(repo)
	got, err := svc.Recent(context.Background(), 3)

	require.NoError(t, err)
	assert.Len(t, got, 3)
}
