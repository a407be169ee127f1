package actions

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ThangaBalajiS/biz-book/internal/storage"
	"github.com/ThangaBalajiS/biz-book/internal/storage/sqlconfig"
)

// UpdateTransaction amends amount, date, or description. A transaction's
// kind and customer binding are facts that never change; there is no way
// to set them here.
type UpdateTransaction struct {
	OwnerID       uuid.UUID
	TransactionID uuid.UUID
	Amount        omit.Val[decimal.Decimal]
	Date          omit.Val[time.Time]
	Description   omit.Val[string]

	IAction
}

func (a *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if a.Amount.IsValue() && !a.Amount.MustGet().IsPositive() {
		return ErrInvalidAmount
	}

	return writer.Transactions.Update(ctx, a.OwnerID, a.TransactionID, &sqlconfig.TransactionUpdate{
		Amount:      a.Amount,
		TxnDate:     a.Date,
		Description: a.Description,
	})
}
