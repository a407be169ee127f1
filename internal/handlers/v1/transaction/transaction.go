package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ThangaBalajiS/biz-book/internal/ledger"
	"github.com/ThangaBalajiS/biz-book/internal/operator/actions"
)

// actionProcessor enqueues a write action and waits for the result. The
// operator delegator implements it.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID           string `json:"id" doc:"Transaction UUID"`
	Kind         string `json:"kind" doc:"Transaction kind"`
	Amount       string `json:"amount" doc:"Decimal amount"`
	Date         string `json:"date" doc:"RFC3339 transaction date"`
	Description  string `json:"description,omitempty" doc:"Free-text description"`
	CustomerID   string `json:"customerID,omitempty" doc:"Customer UUID for customer kinds"`
	CustomerName string `json:"customerName,omitempty" doc:"Customer name for customer kinds"`
	CreatedAt    string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromLedger(tx ledger.Transaction) Transaction {
	out := Transaction{
		ID:           tx.ID.String(),
		Kind:         string(tx.Kind),
		Amount:       tx.Amount.String(),
		Date:         tx.Date.Format(time.RFC3339),
		Description:  tx.Description,
		CustomerName: tx.CustomerName,
		CreatedAt:    tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.CustomerID.Valid {
		out.CustomerID = tx.CustomerID.UUID.String()
	}
	return out
}

func parseOwnerID(header string) (uuid.UUID, error) {
	ownerID, err := uuid.FromString(header)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid X-Owner-ID", err)
	}
	return ownerID, nil
}

func parseUUID(raw, name string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid "+name, err)
	}
	return id, nil
}
