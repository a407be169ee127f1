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

func TestBankStatement_NewestFirstWithRunningBalances(t *testing.T) {
	store, transactions, _, settings := newMockedStorage()
	svc := NewStatementService(store, NewSettingsService(store))

	ownerID := uuid.Must(uuid.NewV4())
	settings.On("FindByOwner", mock.Anything, ownerID).Return(&sqlconfig.Settings{
		OwnerID:            ownerID,
		OpeningBankBalance: decimal.RequireFromString("1000"),
	}, nil)

	day1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	credit := storageTxn(ownerID, ledger.KindBankCredit, "500", day1)
	debit := storageTxn(ownerID, ledger.KindBankDebit, "200", day2)
	payment := storageTxn(ownerID, ledger.KindPaymentReceived, "300", day2)
	payment.CreatedAt = day2.Add(time.Hour)
	payment.CustomerID = uuid.NullUUID{UUID: uuid.Must(uuid.NewV4()), Valid: true}

	// Storage returns newest first; the engine re-sorts internally.
	transactions.On("List", mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.OwnerID == ownerID && f.Kind == nil && f.CustomerID == nil
	})).Return([]*sqlconfig.Transaction{payment, debit, credit}, nil)

	statement, err := svc.BankStatement(context.Background(), ownerID)

	assert.NoError(t, err)
	assert.True(t, statement.OpeningBalance.Equal(decimal.RequireFromString("1000")))
	assert.True(t, statement.CurrentBalance.Equal(decimal.RequireFromString("1600")))

	// Newest first for display: payment (1600), debit (1300), credit (1500).
	assert.Len(t, statement.Entries, 3)
	assert.Equal(t, payment.ID, statement.Entries[0].Transaction.ID)
	assert.True(t, statement.Entries[0].BalanceAfter.Equal(decimal.RequireFromString("1600")))
	assert.Equal(t, debit.ID, statement.Entries[1].Transaction.ID)
	assert.True(t, statement.Entries[1].BalanceAfter.Equal(decimal.RequireFromString("1300")))
	assert.Equal(t, credit.ID, statement.Entries[2].Transaction.ID)
	assert.True(t, statement.Entries[2].BalanceAfter.Equal(decimal.RequireFromString("1500")))
}

func TestBankStatement_EmptyLedgerShowsOpeningAsCurrent(t *testing.T) {
	store, transactions, _, settings := newMockedStorage()
	svc := NewStatementService(store, NewSettingsService(store))

	ownerID := uuid.Must(uuid.NewV4())
	settings.On("FindByOwner", mock.Anything, ownerID).Return(&sqlconfig.Settings{
		OwnerID:            ownerID,
		OpeningBankBalance: decimal.RequireFromString("250"),
	}, nil)
	transactions.On("List", mock.Anything, mock.Anything).
		Return([]*sqlconfig.Transaction{}, nil)

	statement, err := svc.BankStatement(context.Background(), ownerID)

	assert.NoError(t, err)
	assert.Empty(t, statement.Entries)
	assert.True(t, statement.CurrentBalance.Equal(decimal.RequireFromString("250")))
}

func TestAachiMasalaStatement_UsesAachiOpening(t *testing.T) {
	store, transactions, _, settings := newMockedStorage()
	svc := NewStatementService(store, NewSettingsService(store))

	ownerID := uuid.Must(uuid.NewV4())
	settings.On("FindByOwner", mock.Anything, ownerID).Return(&sqlconfig.Settings{
		OwnerID:            ownerID,
		OpeningBankBalance: decimal.RequireFromString("9999"),
		OpeningAachiMasala: decimal.RequireFromString("50"),
	}, nil)

	day1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	transactions.On("List", mock.Anything, mock.Anything).Return([]*sqlconfig.Transaction{
		storageTxn(ownerID, ledger.KindAachiMasalaCredit, "120", day1),
		storageTxn(ownerID, ledger.KindBankCredit, "500", day1),
	}, nil)

	statement, err := svc.AachiMasalaStatement(context.Background(), ownerID)

	assert.NoError(t, err)
	assert.Len(t, statement.Entries, 1, "bank rows are filtered out")
	assert.True(t, statement.OpeningBalance.Equal(decimal.RequireFromString("50")))
	assert.True(t, statement.CurrentBalance.Equal(decimal.RequireFromString("170")))
}

func TestCustomerStatement_ZeroOpening(t *testing.T) {
	store, transactions, customers, _ := newMockedStorage()
	svc := NewStatementService(store, NewSettingsService(store))

	ownerID := uuid.Must(uuid.NewV4())
	row := customerRow(ownerID, "Alpha Traders")
	day1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	customers.On("FindByID", mock.Anything, ownerID, row.ID).Return(row, nil)
	transactions.On("List", mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.CustomerID != nil && *f.CustomerID == row.ID
	})).Return([]*sqlconfig.Transaction{
		customerStorageTxn(ownerID, row.ID, ledger.KindCustomerPurchase, "700", day1),
	}, nil)

	statement, err := svc.CustomerStatement(context.Background(), ownerID, row.ID)

	assert.NoError(t, err)
	assert.True(t, statement.OpeningBalance.IsZero())
	assert.True(t, statement.CurrentBalance.Equal(decimal.RequireFromString("700")))
}

func TestCustomerStatement_UnknownCustomer(t *testing.T) {
	store, _, customers, _ := newMockedStorage()
	svc := NewStatementService(store, NewSettingsService(store))

	customers.On("FindByID", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, sqlconfig.ErrNotFound)

	_, err := svc.CustomerStatement(context.Background(), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()))

	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)
}
