package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ ISettingsTable = (*SettingsTable)(nil)

var settingsColumns = []any{
	"owner_id", "business_name", "opening_bank_balance", "opening_bank_date",
	"opening_aachi_masala", "opening_aachi_masala_date", "updated_at",
}

// SettingsTable provides access to the settings table.
type SettingsTable struct {
	exec bob.Executor
}

// NewSettingsTable creates a SettingsTable bound to the given executor.
func NewSettingsTable(exec bob.Executor) SettingsTable {
	return SettingsTable{exec: exec}
}

// FindByOwner retrieves the owner's settings row.
func (t *SettingsTable) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*Settings, error) {
	q := psql.Select(
		sm.Columns(settingsColumns...),
		sm.From("settings"),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Settings]())
	if err != nil {
		return nil, mapRowError(err)
	}
	return row, nil
}

// Insert creates the owner's settings row with all-zero defaults. Callers
// use it for the lazy creation on first access.
func (t *SettingsTable) Insert(ctx context.Context, ownerID uuid.UUID) (*Settings, error) {
	now := time.Now().UTC()
	q := psql.Insert(
		im.Into("settings",
			"owner_id", "business_name", "opening_bank_balance", "opening_bank_date",
			"opening_aachi_masala", "opening_aachi_masala_date",
		),
		im.Values(psql.Arg(ownerID, "", "0", now, "0", now)),
	)
	if _, err := bob.Exec(ctx, t.exec, q); err != nil {
		return nil, err
	}
	return t.FindByOwner(ctx, ownerID)
}

// Update saves explicit values for every settings field.
func (t *SettingsTable) Update(ctx context.Context, ownerID uuid.UUID, update *SettingsUpdate) error {
	q := psql.Update(
		um.Table("settings"),
		um.SetCol("business_name").ToArg(update.BusinessName),
		um.SetCol("opening_bank_balance").ToArg(update.OpeningBankBalance),
		um.SetCol("opening_bank_date").ToArg(update.OpeningBankDate),
		um.SetCol("opening_aachi_masala").ToArg(update.OpeningAachiMasala),
		um.SetCol("opening_aachi_masala_date").ToArg(update.OpeningAachiMasalaDate),
		um.SetCol("updated_at").ToArg(time.Now().UTC()),
		um.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
