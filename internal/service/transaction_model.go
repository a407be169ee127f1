package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/ThangaBalajiS/biz-book/internal/ledger"
)

// TransactionListFilter narrows a transaction listing. OwnerID is
// mandatory; everything else is optional. Ledger filtering happens in
// memory via the classifier, never via a stored membership flag.
type TransactionListFilter struct {
	OwnerID    uuid.UUID
	Kind       *ledger.Kind
	CustomerID *uuid.UUID
	Ledger     *ledger.Ledger
	FromDate   *time.Time
	ToDate     *time.Time
}
