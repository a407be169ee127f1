package actions

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/ThangaBalajiS/biz-book/internal/storage"
	"github.com/ThangaBalajiS/biz-book/internal/storage/sqlconfig"
)

// CreateCustomer adds a customer. Names are unique per owner; the unique
// index backs the check and the conflict surfaces as
// sqlconfig.ErrDuplicateCustomerName.
type CreateCustomer struct {
	OwnerID uuid.UUID
	Name    string
	Phone   string

	// ID of the created customer, set on success.
	ID uuid.UUID

	IAction
}

func (a *CreateCustomer) Perform(ctx context.Context, writer *storage.Writer) error {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return ErrCustomerNameRequired
	}

	id, err := writer.Customers.Insert(ctx, &sqlconfig.CustomerCreate{
		OwnerID: a.OwnerID,
		Name:    name,
		Phone:   strings.TrimSpace(a.Phone),
	})
	if err != nil {
		return err
	}

	a.ID = id
	return nil
}
