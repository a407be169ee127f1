package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ThangaBalajiS/biz-book/internal/storage"
)

// DeleteCustomer removes a customer only when no transaction of any kind
// references it. The guard counts every transaction, not just
// outstanding-affecting ones, so no ledger history is silently orphaned.
// Guard and delete run in the same transaction.
type DeleteCustomer struct {
	OwnerID    uuid.UUID
	CustomerID uuid.UUID

	IAction
}

func (a *DeleteCustomer) Perform(ctx context.Context, writer *storage.Writer) error {
	count, err := writer.Transactions.CountForCustomer(ctx, a.OwnerID, a.CustomerID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCustomerHasTransactions
	}

	return writer.Customers.Delete(ctx, a.OwnerID, a.CustomerID)
}
