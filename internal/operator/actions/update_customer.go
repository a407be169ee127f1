package actions

import (
	"context"
	"strings"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/ThangaBalajiS/biz-book/internal/storage"
	"github.com/ThangaBalajiS/biz-book/internal/storage/sqlconfig"
)

// UpdateCustomer renames or re-phones a customer. The per-owner name
// uniqueness is preserved by the same index that guards creation.
type UpdateCustomer struct {
	OwnerID    uuid.UUID
	CustomerID uuid.UUID
	Name       string
	Phone      string

	IAction
}

func (a *UpdateCustomer) Perform(ctx context.Context, writer *storage.Writer) error {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return ErrCustomerNameRequired
	}

	return writer.Customers.Update(ctx, a.OwnerID, a.CustomerID, &sqlconfig.CustomerUpdate{
		Name:  omit.From(name),
		Phone: omit.From(strings.TrimSpace(a.Phone)),
	})
}
