package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ThangaBalajiS/biz-book/internal/ledger"
	"github.com/ThangaBalajiS/biz-book/internal/storage"
	"github.com/ThangaBalajiS/biz-book/internal/storage/sqlconfig"
)

// CustomerService handles customer reads.
type CustomerService struct {
	storage *storage.Storage
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(store *storage.Storage) *CustomerService {
	return &CustomerService{storage: store}
}

// ListCustomers returns every customer of the owner, name ascending, each
// with their current outstanding derived from the owner's transactions.
func (s *CustomerService) ListCustomers(ctx context.Context, ownerID uuid.UUID) ([]Customer, error) {
	rows, err := s.storage.Customers.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	txnRows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	txns := sqlconfig.ToLedgerTransactions(txnRows)

	customers := make([]Customer, len(rows))
	for i, row := range rows {
		outstanding, err := ledger.CustomerOutstanding(txns, row.ID)
		if err != nil {
			return nil, err
		}
		customers[i] = Customer{
			ID:          row.ID,
			Name:        row.Name,
			Phone:       row.Phone,
			Outstanding: outstanding,
			CreatedAt:   row.CreatedAt,
		}
	}
	return customers, nil
}

// GetCustomer retrieves one customer with their transactions (newest
// first) and outstanding.
func (s *CustomerService) GetCustomer(ctx context.Context, ownerID, customerID uuid.UUID) (*CustomerDetail, error) {
	row, err := s.storage.Customers.FindByID(ctx, ownerID, customerID)
	if err != nil {
		return nil, err
	}

	txnRows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		OwnerID:    ownerID,
		CustomerID: &customerID,
	})
	if err != nil {
		return nil, err
	}
	txns := sqlconfig.ToLedgerTransactions(txnRows)
	for i := range txns {
		txns[i].CustomerName = row.Name
	}

	outstanding, err := ledger.CustomerOutstanding(txns, customerID)
	if err != nil {
		return nil, err
	}

	return &CustomerDetail{
		Customer: Customer{
			ID:          row.ID,
			Name:        row.Name,
			Phone:       row.Phone,
			Outstanding: outstanding,
			CreatedAt:   row.CreatedAt,
		},
		Transactions: txns,
	}, nil
}
