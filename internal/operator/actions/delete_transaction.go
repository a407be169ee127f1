package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ThangaBalajiS/biz-book/internal/storage"
)

// DeleteTransaction removes a transaction. Every balance is derived on
// read, so the deletion is reflected immediately everywhere.
type DeleteTransaction struct {
	OwnerID       uuid.UUID
	TransactionID uuid.UUID

	IAction
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.Delete(ctx, a.OwnerID, a.TransactionID)
}
