package actions

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ThangaBalajiS/biz-book/internal/storage"
	"github.com/ThangaBalajiS/biz-book/internal/storage/sqlconfig"
)

// UpdateSettings saves the owner's settings row, creating the default row
// first if the owner has never touched settings.
type UpdateSettings struct {
	OwnerID                uuid.UUID
	BusinessName           string
	OpeningBankBalance     decimal.Decimal
	OpeningBankDate        time.Time
	OpeningAachiMasala     decimal.Decimal
	OpeningAachiMasalaDate time.Time

	IAction
}

func (a *UpdateSettings) Perform(ctx context.Context, writer *storage.Writer) error {
	update := &sqlconfig.SettingsUpdate{
		BusinessName:           a.BusinessName,
		OpeningBankBalance:     a.OpeningBankBalance,
		OpeningBankDate:        a.OpeningBankDate,
		OpeningAachiMasala:     a.OpeningAachiMasala,
		OpeningAachiMasalaDate: a.OpeningAachiMasalaDate,
	}
	if update.OpeningBankDate.IsZero() {
		update.OpeningBankDate = time.Now().UTC()
	}
	if update.OpeningAachiMasalaDate.IsZero() {
		update.OpeningAachiMasalaDate = time.Now().UTC()
	}

	err := writer.Settings.Update(ctx, a.OwnerID, update)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		if _, err := writer.Settings.Insert(ctx, a.OwnerID); err != nil {
			return err
		}
		return writer.Settings.Update(ctx, a.OwnerID, update)
	}
	return err
}
