package ledger

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Helpers shared by the engine tests.

func day(n int) time.Time {
	return time.Date(2025, 3, n, 0, 0, 0, 0, time.UTC)
}

func createdAt(n int, hour int) time.Time {
	return time.Date(2025, 3, n, hour, 0, 0, 0, time.UTC)
}

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func txn(kind Kind, amount string, date, created time.Time) Transaction {
	return Transaction{
		ID:        uuid.Must(uuid.NewV4()),
		OwnerID:   uuid.Must(uuid.NewV4()),
		Kind:      kind,
		Amount:    amt(amount),
		Date:      date,
		CreatedAt: created,
	}
}

func customerTxn(kind Kind, amount string, customerID uuid.UUID, date, created time.Time) Transaction {
	t := txn(kind, amount, date, created)
	t.CustomerID = uuid.NullUUID{UUID: customerID, Valid: true}
	return t
}
