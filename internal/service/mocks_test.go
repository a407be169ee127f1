package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/ThangaBalajiS/biz-book/internal/storage"
	"github.com/ThangaBalajiS/biz-book/internal/storage/sqlconfig"
)

// Hand-rolled table mocks shared by the service tests.

type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*sqlconfig.Transaction, error) {
	args := m.Called(ctx, ownerID, id)
	row, _ := args.Get(0).(*sqlconfig.Transaction)
	return row, args.Error(1)
}

func (m *mockTransactionTable) Insert(ctx context.Context, create *sqlconfig.TransactionCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	id, _ := args.Get(0).(uuid.UUID)
	return id, args.Error(1)
}

func (m *mockTransactionTable) Update(ctx context.Context, ownerID, id uuid.UUID, update *sqlconfig.TransactionUpdate) error {
	args := m.Called(ctx, ownerID, id, update)
	return args.Error(0)
}

func (m *mockTransactionTable) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *mockTransactionTable) List(ctx context.Context, filter *sqlconfig.TransactionFilter) ([]*sqlconfig.Transaction, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*sqlconfig.Transaction)
	return rows, args.Error(1)
}

func (m *mockTransactionTable) CountForCustomer(ctx context.Context, ownerID, customerID uuid.UUID) (int, error) {
	args := m.Called(ctx, ownerID, customerID)
	return args.Int(0), args.Error(1)
}

type mockCustomerTable struct {
	mock.Mock
}

func (m *mockCustomerTable) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*sqlconfig.Customer, error) {
	args := m.Called(ctx, ownerID, id)
	row, _ := args.Get(0).(*sqlconfig.Customer)
	return row, args.Error(1)
}

func (m *mockCustomerTable) FindByName(ctx context.Context, ownerID uuid.UUID, name string) (*sqlconfig.Customer, error) {
	args := m.Called(ctx, ownerID, name)
	row, _ := args.Get(0).(*sqlconfig.Customer)
	return row, args.Error(1)
}

func (m *mockCustomerTable) Insert(ctx context.Context, create *sqlconfig.CustomerCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	id, _ := args.Get(0).(uuid.UUID)
	return id, args.Error(1)
}

func (m *mockCustomerTable) Update(ctx context.Context, ownerID, id uuid.UUID, update *sqlconfig.CustomerUpdate) error {
	args := m.Called(ctx, ownerID, id, update)
	return args.Error(0)
}

func (m *mockCustomerTable) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *mockCustomerTable) List(ctx context.Context, ownerID uuid.UUID) ([]*sqlconfig.Customer, error) {
	args := m.Called(ctx, ownerID)
	rows, _ := args.Get(0).([]*sqlconfig.Customer)
	return rows, args.Error(1)
}

func (m *mockCustomerTable) Count(ctx context.Context, ownerID uuid.UUID) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}

type mockSettingsTable struct {
	mock.Mock
}

func (m *mockSettingsTable) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*sqlconfig.Settings, error) {
	args := m.Called(ctx, ownerID)
	row, _ := args.Get(0).(*sqlconfig.Settings)
	return row, args.Error(1)
}

func (m *mockSettingsTable) Insert(ctx context.Context, ownerID uuid.UUID) (*sqlconfig.Settings, error) {
	args := m.Called(ctx, ownerID)
	row, _ := args.Get(0).(*sqlconfig.Settings)
	return row, args.Error(1)
}

func (m *mockSettingsTable) Update(ctx context.Context, ownerID uuid.UUID, update *sqlconfig.SettingsUpdate) error {
	args := m.Called(ctx, ownerID, update)
	return args.Error(0)
}

func newMockedStorage() (*storage.Storage, *mockTransactionTable, *mockCustomerTable, *mockSettingsTable) {
	transactions := new(mockTransactionTable)
	customers := new(mockCustomerTable)
	settings := new(mockSettingsTable)
	store := &storage.Storage{
		Transactions: transactions,
		Customers:    customers,
		Settings:     settings,
	}
	return store, transactions, customers, settings
}
