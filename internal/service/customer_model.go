package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ThangaBalajiS/biz-book/internal/ledger"
)

// Customer represents a customer in the service layer, with the derived
// outstanding figure attached. Outstanding is never stored; it is always
// recomputed from the transaction history.
type Customer struct {
	ID          uuid.UUID
	Name        string
	Phone       string
	Outstanding decimal.Decimal
	CreatedAt   time.Time
}

// CustomerDetail is one customer plus their transaction history, newest
// first.
type CustomerDetail struct {
	Customer     Customer
	Transactions []ledger.Transaction
}
