package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Settings is the single per-owner settings row holding the owner-level
// opening balances. The outstanding ledger deliberately has no opening
// balance here; customer ledgers always start at zero.
type Settings struct {
	OwnerID                uuid.UUID       `db:"owner_id"`
	BusinessName           string          `db:"business_name"`
	OpeningBankBalance     decimal.Decimal `db:"opening_bank_balance"`
	OpeningBankDate        time.Time       `db:"opening_bank_date"`
	OpeningAachiMasala     decimal.Decimal `db:"opening_aachi_masala"`
	OpeningAachiMasalaDate time.Time       `db:"opening_aachi_masala_date"`
	UpdatedAt              time.Time       `db:"updated_at"`
}

// SettingsUpdate is the input for saving settings.
type SettingsUpdate struct {
	BusinessName           string
	OpeningBankBalance     decimal.Decimal
	OpeningBankDate        time.Time
	OpeningAachiMasala     decimal.Decimal
	OpeningAachiMasalaDate time.Time
}

// ISettingsTable defines the interface for settings storage operations.
//
//go:generate mockery --name ISettingsTable --output mock_ISettingsTable.go
type ISettingsTable interface {
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*Settings, error)
	Insert(ctx context.Context, ownerID uuid.UUID) (*Settings, error)
	Update(ctx context.Context, ownerID uuid.UUID, update *SettingsUpdate) error
}
