package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ThangaBalajiS/biz-book/internal/ledger"
	"github.com/ThangaBalajiS/biz-book/internal/storage/sqlconfig"
)

func TestGetDashboard_ComposesSummary(t *testing.T) {
	store, transactions, customers, settings := newMockedStorage()
	svc := NewDashboardService(store, NewSettingsService(store))

	ownerID := uuid.Must(uuid.NewV4())
	alpha := customerRow(ownerID, "Alpha Traders")

	settings.On("FindByOwner", mock.Anything, ownerID).Return(&sqlconfig.Settings{
		OwnerID:            ownerID,
		OpeningBankBalance: decimal.RequireFromString("1000"),
		OpeningAachiMasala: decimal.RequireFromString("50"),
	}, nil)

	day1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	transactions.On("List", mock.Anything, mock.Anything).Return([]*sqlconfig.Transaction{
		customerStorageTxn(ownerID, alpha.ID, ledger.KindCustomerPurchase, "700", day1),
		customerStorageTxn(ownerID, alpha.ID, ledger.KindPaymentReceived, "300", day2),
		storageTxn(ownerID, ledger.KindBankCredit, "500", day1),
		storageTxn(ownerID, ledger.KindAachiMasalaPurchase, "20", day2),
	}, nil)
	customers.On("List", mock.Anything, ownerID).
		Return([]*sqlconfig.Customer{alpha}, nil)

	summary, err := svc.GetDashboard(context.Background(), ownerID)

	assert.NoError(t, err)
	// 1000 opening + 300 payment + 500 credit
	assert.True(t, summary.BankBalance.Equal(decimal.RequireFromString("1800")), "bank=%s", summary.BankBalance)
	// 700 - 300
	assert.True(t, summary.TotalOutstanding.Equal(decimal.RequireFromString("400")))
	// 50 - 20
	assert.True(t, summary.AachiMasalaBalance.Equal(decimal.RequireFromString("30")))
	// 700 customer purchase + 20 aachi purchase
	assert.True(t, summary.TotalPurchases.Equal(decimal.RequireFromString("720")))
	assert.Equal(t, 1, summary.CustomerCount)
	assert.Len(t, summary.Recent, 4)
}

func TestGetDashboard_RecentFeedHasCustomerNames(t *testing.T) {
	store, transactions, customers, settings := newMockedStorage()
	svc := NewDashboardService(store, NewSettingsService(store))

	ownerID := uuid.Must(uuid.NewV4())
	alpha := customerRow(ownerID, "Alpha Traders")
	day1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	settings.On("FindByOwner", mock.Anything, ownerID).
		Return(&sqlconfig.Settings{OwnerID: ownerID}, nil)
	transactions.On("List", mock.Anything, mock.Anything).Return([]*sqlconfig.Transaction{
		customerStorageTxn(ownerID, alpha.ID, ledger.KindCustomerPurchase, "100", day1),
	}, nil)
	customers.On("List", mock.Anything, ownerID).
		Return([]*sqlconfig.Customer{alpha}, nil)

	summary, err := svc.GetDashboard(context.Background(), ownerID)

	assert.NoError(t, err)
	assert.Len(t, summary.Recent, 1)
	assert.Equal(t, "Alpha Traders", summary.Recent[0].CustomerName)
}

func TestGetDashboard_RecentFeedCapped(t *testing.T) {
	store, transactions, customers, settings := newMockedStorage()
	svc := NewDashboardService(store, NewSettingsService(store))

	ownerID := uuid.Must(uuid.NewV4())
	settings.On("FindByOwner", mock.Anything, ownerID).
		Return(&sqlconfig.Settings{OwnerID: ownerID}, nil)

	var rows []*sqlconfig.Transaction
	for i := 1; i <= 9; i++ {
		rows = append(rows, storageTxn(ownerID, ledger.KindBankCredit, "1",
			time.Date(2025, 3, i, 0, 0, 0, 0, time.UTC)))
	}
	transactions.On("List", mock.Anything, mock.Anything).Return(rows, nil)
	customers.On("List", mock.Anything, ownerID).Return([]*sqlconfig.Customer{}, nil)

	summary, err := svc.GetDashboard(context.Background(), ownerID)

	assert.NoError(t, err)
	assert.Len(t, summary.Recent, ledger.RecentActivityLimit)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), summary.Recent[0].Date)
}
