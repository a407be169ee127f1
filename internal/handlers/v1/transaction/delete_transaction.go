package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ThangaBalajiS/biz-book/internal/operator/actions"
	"github.com/ThangaBalajiS/biz-book/internal/storage/sqlconfig"
)

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	OwnerID       string `header:"X-Owner-ID" required:"true" doc:"Owner UUID set by the fronting auth layer"`
	TransactionID string `path:"transactionID" format:"uuid" doc:"Transaction UUID"`
}

// DeleteTransactionOutput is the Huma output for deleting a transaction.
type DeleteTransactionOutput struct {
	Status int
}

// DeleteTransactionHandler handles DELETE /v1/transaction/{transactionID}.
type DeleteTransactionHandler struct {
	Operator actionProcessor
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(op actionProcessor) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{Operator: op}
}

// Register registers the delete transaction endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/transaction/{transactionID}",
		Summary:       "Delete transaction",
		Description:   "Removes a transaction. Derived balances reflect the removal immediately.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	ownerID, err := parseOwnerID(input.OwnerID)
	if err != nil {
		return nil, err
	}
	transactionID, err := parseUUID(input.TransactionID, "transactionID")
	if err != nil {
		return nil, err
	}

	action := &actions.DeleteTransaction{OwnerID: ownerID, TransactionID: transactionID}
	if err := h.Operator.Process(ctx, action); err != nil {
		if errors.Is(err, sqlconfig.ErrNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "transaction not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete transaction", err)
	}

	return &DeleteTransactionOutput{Status: http.StatusNoContent}, nil
}
