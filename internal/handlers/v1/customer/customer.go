package customer

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ThangaBalajiS/biz-book/internal/operator/actions"
	"github.com/ThangaBalajiS/biz-book/internal/service"
)

// actionProcessor enqueues a write action and waits for the result. The
// operator delegator implements it.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Customer is the API response model for a customer. Outstanding is
// derived from the transaction history on every read.
type Customer struct {
	ID          string `json:"id" doc:"Customer UUID"`
	Name        string `json:"name" doc:"Customer name, unique per owner"`
	Phone       string `json:"phone,omitempty" doc:"Phone number"`
	Outstanding string `json:"outstanding" doc:"Derived outstanding balance"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(c service.Customer) Customer {
	return Customer{
		ID:          c.ID.String(),
		Name:        c.Name,
		Phone:       c.Phone,
		Outstanding: c.Outstanding.String(),
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}

func parseOwnerID(header string) (uuid.UUID, error) {
	ownerID, err := uuid.FromString(header)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid X-Owner-ID", err)
	}
	return ownerID, nil
}

func parseCustomerID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid customerID", err)
	}
	return id, nil
}
