package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ThangaBalajiS/biz-book/internal/ledger"
)

// Transaction represents a transaction row. CustomerName is populated from
// the joined customers table when present.
type Transaction struct {
	ID           uuid.UUID       `db:"id"`
	OwnerID      uuid.UUID       `db:"owner_id"`
	Kind         string          `db:"kind"`
	Amount       decimal.Decimal `db:"amount"`
	TxnDate      time.Time       `db:"txn_date"`
	Description  string          `db:"description"`
	CustomerID   uuid.NullUUID   `db:"customer_id"`
	CustomerName string          `db:"customer_name"`
	CreatedAt    time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	OwnerID     uuid.UUID
	Kind        ledger.Kind
	Amount      decimal.Decimal
	TxnDate     time.Time // defaults to now if zero
	Description string
	CustomerID  uuid.NullUUID
}

// TransactionUpdate carries the only mutable fields of a transaction.
// Kind and customer binding never change after creation.
type TransactionUpdate struct {
	Amount      omit.Val[decimal.Decimal]
	TxnDate     omit.Val[time.Time]
	Description omit.Val[string]
}

// TransactionFilter specifies filters for listing transactions. OwnerID is
// mandatory; every query is scoped to one owner.
type TransactionFilter struct {
	OwnerID    uuid.UUID
	Kind       *ledger.Kind
	CustomerID *uuid.UUID
	FromDate   *time.Time
	ToDate     *time.Time // compared against end of day
}

// ITransactionTable defines the interface for transaction storage
// operations. This abstraction allows swapping the implementation (e.g.
// Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, update *TransactionUpdate) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	CountForCustomer(ctx context.Context, ownerID, customerID uuid.UUID) (int, error)
}

// ToLedger converts a storage row into the engine's transaction model.
func (t *Transaction) ToLedger() ledger.Transaction {
	return ledger.Transaction{
		ID:           t.ID,
		OwnerID:      t.OwnerID,
		Kind:         ledger.Kind(t.Kind),
		Amount:       t.Amount,
		Date:         t.TxnDate,
		CreatedAt:    t.CreatedAt,
		Description:  t.Description,
		CustomerID:   t.CustomerID,
		CustomerName: t.CustomerName,
	}
}

// ToLedgerTransactions converts a page of rows for the engine.
func ToLedgerTransactions(rows []*Transaction) []ledger.Transaction {
	out := make([]ledger.Transaction, len(rows))
	for i, row := range rows {
		out[i] = row.ToLedger()
	}
	return out
}
