package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ThangaBalajiS/biz-book/internal/ledger"
	"github.com/ThangaBalajiS/biz-book/internal/storage"
	"github.com/ThangaBalajiS/biz-book/internal/storage/sqlconfig"
)

// TransactionService handles transaction reads.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListTransactions returns the owner's transactions matching the filter,
// newest first, with customer names resolved for presentation.
func (s *TransactionService) ListTransactions(ctx context.Context, filter TransactionListFilter) ([]ledger.Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		OwnerID:    filter.OwnerID,
		Kind:       filter.Kind,
		CustomerID: filter.CustomerID,
		FromDate:   filter.FromDate,
		ToDate:     filter.ToDate,
	})
	if err != nil {
		return nil, err
	}

	txns := sqlconfig.ToLedgerTransactions(rows)

	if filter.Ledger != nil {
		selected := txns[:0]
		for _, txn := range txns {
			effect, err := ledger.Classify(txn.Kind)
			if err != nil {
				return nil, err
			}
			if effect.Affects(*filter.Ledger) {
				selected = append(selected, txn)
			}
		}
		txns = selected
	}

	if err := s.attachCustomerNames(ctx, filter.OwnerID, txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// GetTransaction retrieves one transaction scoped to the owner.
func (s *TransactionService) GetTransaction(ctx context.Context, ownerID, id uuid.UUID) (*ledger.Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	txns := []ledger.Transaction{row.ToLedger()}
	if err := s.attachCustomerNames(ctx, ownerID, txns); err != nil {
		return nil, err
	}
	return &txns[0], nil
}

func (s *TransactionService) attachCustomerNames(ctx context.Context, ownerID uuid.UUID, txns []ledger.Transaction) error {
	needed := false
	for _, txn := range txns {
		if txn.CustomerID.Valid {
			needed = true
			break
		}
	}
	if !needed {
		return nil
	}

	customers, err := s.storage.Customers.List(ctx, ownerID)
	if err != nil {
		return err
	}
	names := make(map[uuid.UUID]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}
	for i := range txns {
		if txns[i].CustomerID.Valid {
			txns[i].CustomerName = names[txns[i].CustomerID.UUID]
		}
	}
	return nil
}
