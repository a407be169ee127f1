package service

import (
	"github.com/ThangaBalajiS/biz-book/internal/storage"
)

// Service holds all read-side services. Writes go through the operator.
type Service struct {
	Transaction *TransactionService
	Customer    *CustomerService
	Settings    *SettingsService
	Statement   *StatementService
	Dashboard   *DashboardService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	settings := NewSettingsService(store)
	return &Service{
		Transaction: NewTransactionService(store),
		Customer:    NewCustomerService(store),
		Settings:    settings,
		Statement:   NewStatementService(store, settings),
		Dashboard:   NewDashboardService(store, settings),
	}
}
