package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

// Customer represents a customer row.
type Customer struct {
	ID        uuid.UUID `db:"id"`
	OwnerID   uuid.UUID `db:"owner_id"`
	Name      string    `db:"name"`
	Phone     string    `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
}

// CustomerCreate is the input for creating a new customer.
type CustomerCreate struct {
	OwnerID uuid.UUID
	Name    string
	Phone   string
}

// CustomerUpdate carries the mutable customer fields.
type CustomerUpdate struct {
	Name  omit.Val[string]
	Phone omit.Val[string]
}

// ICustomerTable defines the interface for customer storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without
// changing callers.
//
//go:generate mockery --name ICustomerTable --output mock_ICustomerTable.go
type ICustomerTable interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Customer, error)
	FindByName(ctx context.Context, ownerID uuid.UUID, name string) (*Customer, error)
	Insert(ctx context.Context, create *CustomerCreate) (uuid.UUID, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, update *CustomerUpdate) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	List(ctx context.Context, ownerID uuid.UUID) ([]*Customer, error)
	Count(ctx context.Context, ownerID uuid.UUID) (int, error)
}
