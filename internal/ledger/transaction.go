package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction is a single monetary event. Once created only Amount, Date,
// and Description may change; Kind and CustomerID are immutable.
type Transaction struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Kind        Kind
	Amount      decimal.Decimal
	Date        time.Time
	CreatedAt   time.Time
	Description string
	// CustomerID is set only for kinds where Kind.RequiresCustomer() holds.
	CustomerID uuid.NullUUID
	// CustomerName is carried for presentation when the row was joined
	// against customers; the engine never reads it.
	CustomerName string
}

// Openings carries the owner-level opening balances from settings. The
// outstanding ledger has no opening balance; customers start at zero.
type Openings struct {
	Bank        decimal.Decimal
	AachiMasala decimal.Decimal
}
