package actions

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ThangaBalajiS/biz-book/internal/ledger"
	"github.com/ThangaBalajiS/biz-book/internal/storage"
	"github.com/ThangaBalajiS/biz-book/internal/storage/sqlconfig"
)

// CreateTransaction records a new monetary event. This is the validation
// boundary for transactions: the kind must be recognized, the amount must
// be strictly positive, and customer kinds must reference an existing
// customer of the same owner. Nothing invalid reaches the engine.
type CreateTransaction struct {
	OwnerID     uuid.UUID
	Kind        ledger.Kind
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	CustomerID  uuid.NullUUID

	// ID of the created transaction, set on success.
	ID uuid.UUID

	IAction
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if !a.Kind.Valid() {
		return ledger.ErrUnknownKind{Kind: a.Kind}
	}
	if !a.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	if a.Kind.RequiresCustomer() {
		if !a.CustomerID.Valid {
			return ErrCustomerRequired
		}
		if _, err := writer.Customers.FindByID(ctx, a.OwnerID, a.CustomerID.UUID); err != nil {
			if errors.Is(err, sqlconfig.ErrNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}
	} else {
		// Non-customer kinds never carry a customer reference.
		a.CustomerID = uuid.NullUUID{}
	}

	id, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		OwnerID:     a.OwnerID,
		Kind:        a.Kind,
		Amount:      a.Amount,
		TxnDate:     a.Date,
		Description: a.Description,
		CustomerID:  a.CustomerID,
	})
	if err != nil {
		return err
	}

	a.ID = id
	return nil
}
