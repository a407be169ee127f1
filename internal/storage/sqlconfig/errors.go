package sqlconfig

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// ErrNotFound is returned when a row does not exist for the given owner.
var ErrNotFound = errors.New("storage: not found")

// ErrDuplicateCustomerName is returned when an insert or update violates
// the per-owner unique index on customer names.
var ErrDuplicateCustomerName = errors.New("storage: customer name already exists")

const uniqueViolation = "23505"

func mapRowError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func mapCustomerWriteError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicateCustomerName
	}
	return err
}
