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

func customerRow(ownerID uuid.UUID, name string) *sqlconfig.Customer {
	return &sqlconfig.Customer{
		ID:        uuid.Must(uuid.NewV4()),
		OwnerID:   ownerID,
		Name:      name,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func customerStorageTxn(ownerID, customerID uuid.UUID, kind ledger.Kind, amount string, date time.Time) *sqlconfig.Transaction {
	row := storageTxn(ownerID, kind, amount, date)
	row.CustomerID = uuid.NullUUID{UUID: customerID, Valid: true}
	return row
}

func TestListCustomers_DerivesOutstandingPerCustomer(t *testing.T) {
	store, transactions, customers, _ := newMockedStorage()
	svc := NewCustomerService(store)

	ownerID := uuid.Must(uuid.NewV4())
	alpha := customerRow(ownerID, "Alpha Traders")
	beta := customerRow(ownerID, "Beta Agencies")
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	customers.On("List", mock.Anything, ownerID).
		Return([]*sqlconfig.Customer{alpha, beta}, nil)
	transactions.On("List", mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.OwnerID == ownerID && f.CustomerID == nil
	})).Return([]*sqlconfig.Transaction{
		customerStorageTxn(ownerID, alpha.ID, ledger.KindCustomerPurchase, "500", date),
		customerStorageTxn(ownerID, alpha.ID, ledger.KindPaymentReceived, "100", date.AddDate(0, 0, 1)),
		customerStorageTxn(ownerID, beta.ID, ledger.KindCustomerPurchase, "150", date),
	}, nil)

	result, err := svc.ListCustomers(context.Background(), ownerID)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "Alpha Traders", result[0].Name)
	assert.True(t, result[0].Outstanding.Equal(decimal.RequireFromString("400")))
	assert.True(t, result[1].Outstanding.Equal(decimal.RequireFromString("150")))
}

func TestListCustomers_TotalMatchesPerCustomerSum(t *testing.T) {
	store, transactions, customers, _ := newMockedStorage()
	svc := NewCustomerService(store)

	ownerID := uuid.Must(uuid.NewV4())
	alpha := customerRow(ownerID, "Alpha Traders")
	beta := customerRow(ownerID, "Beta Agencies")
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := []*sqlconfig.Transaction{
		customerStorageTxn(ownerID, alpha.ID, ledger.KindCustomerPurchase, "400", date),
		customerStorageTxn(ownerID, beta.ID, ledger.KindCustomerPurchase, "150", date),
	}

	customers.On("List", mock.Anything, ownerID).
		Return([]*sqlconfig.Customer{alpha, beta}, nil)
	transactions.On("List", mock.Anything, mock.Anything).Return(rows, nil)

	result, err := svc.ListCustomers(context.Background(), ownerID)
	assert.NoError(t, err)

	perCustomer := decimal.Zero
	for _, c := range result {
		perCustomer = perCustomer.Add(c.Outstanding)
	}

	total, err := ledger.TotalOutstanding(sqlconfig.ToLedgerTransactions(rows))
	assert.NoError(t, err)
	assert.True(t, total.Equal(perCustomer), "total=%s perCustomer=%s", total, perCustomer)
}

func TestGetCustomer_WithTransactionsAndOutstanding(t *testing.T) {
	store, transactions, customers, _ := newMockedStorage()
	svc := NewCustomerService(store)

	ownerID := uuid.Must(uuid.NewV4())
	row := customerRow(ownerID, "Alpha Traders")
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	customers.On("FindByID", mock.Anything, ownerID, row.ID).Return(row, nil)
	transactions.On("List", mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.OwnerID == ownerID && f.CustomerID != nil && *f.CustomerID == row.ID
	})).Return([]*sqlconfig.Transaction{
		customerStorageTxn(ownerID, row.ID, ledger.KindCustomerPurchase, "700", date),
		customerStorageTxn(ownerID, row.ID, ledger.KindPaymentReceived, "300", date.AddDate(0, 0, 4)),
	}, nil)

	detail, err := svc.GetCustomer(context.Background(), ownerID, row.ID)

	assert.NoError(t, err)
	assert.Equal(t, "Alpha Traders", detail.Customer.Name)
	assert.True(t, detail.Customer.Outstanding.Equal(decimal.RequireFromString("400")))
	assert.Len(t, detail.Transactions, 2)
	assert.Equal(t, "Alpha Traders", detail.Transactions[0].CustomerName)
}

func TestGetCustomer_NotFound(t *testing.T) {
	store, _, customers, _ := newMockedStorage()
	svc := NewCustomerService(store)

	customers.On("FindByID", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, sqlconfig.ErrNotFound)

	_, err := svc.GetCustomer(context.Background(), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()))

	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)
}
