package actions

import (
	"context"
	"errors"

	"github.com/ThangaBalajiS/biz-book/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// Validation and conflict errors surfaced to callers as rejected
// operations, not crashes.
var (
	ErrInvalidAmount           = errors.New("amount must be positive")
	ErrCustomerRequired        = errors.New("customer is required for this transaction kind")
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrCustomerNameRequired    = errors.New("customer name is required")
	ErrCustomerHasTransactions = errors.New("cannot delete customer with existing transactions")
)
