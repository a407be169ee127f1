package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/ThangaBalajiS/biz-book/internal/operator/actions"
	"github.com/ThangaBalajiS/biz-book/internal/storage/sqlconfig"
)

// UpdateTransactionBody is the request body for updating a transaction.
// Omitted fields stay unchanged. Kind and customer binding are immutable;
// delete and re-create to change them.
type UpdateTransactionBody struct {
	Amount      *string `json:"amount,omitempty" doc:"New positive decimal amount"`
	Date        *string `json:"date,omitempty" format:"date-time" doc:"New RFC3339 transaction date"`
	Description *string `json:"description,omitempty" doc:"New description"`
}

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	OwnerID       string `header:"X-Owner-ID" required:"true" doc:"Owner UUID set by the fronting auth layer"`
	TransactionID string `path:"transactionID" format:"uuid" doc:"Transaction UUID"`
	Body          UpdateTransactionBody
}

// UpdateTransactionOutput is the Huma output for updating a transaction.
type UpdateTransactionOutput struct {
	Status int
}

// UpdateTransactionHandler handles PATCH /v1/transaction/{transactionID}.
type UpdateTransactionHandler struct {
	Operator actionProcessor
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(op actionProcessor) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{Operator: op}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-transaction",
		Method:        http.MethodPatch,
		Path:          "/v1/transaction/{transactionID}",
		Summary:       "Update transaction",
		Description:   "Amends a transaction's amount, date, or description.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

// parseUpdateTransactionInput parses and validates the API input.
func parseUpdateTransactionInput(input *UpdateTransactionInput) (*actions.UpdateTransaction, error) {
	ownerID, err := parseOwnerID(input.OwnerID)
	if err != nil {
		return nil, err
	}
	transactionID, err := parseUUID(input.TransactionID, "transactionID")
	if err != nil {
		return nil, err
	}

	action := &actions.UpdateTransaction{
		OwnerID:       ownerID,
		TransactionID: transactionID,
	}

	if input.Body.Amount != nil {
		amount, err := decimal.NewFromString(*input.Body.Amount)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		action.Amount = omit.From(amount)
	}

	if input.Body.Date != nil {
		date, err := time.Parse(time.RFC3339, *input.Body.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
		action.Date = omit.From(date)
	}

	if input.Body.Description != nil {
		action.Description = omit.From(*input.Body.Description)
	}

	return action, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	action, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		switch {
		case errors.Is(err, actions.ErrInvalidAmount):
			return nil, huma.NewError(http.StatusBadRequest, err.Error())
		case errors.Is(err, sqlconfig.ErrNotFound):
			return nil, huma.NewError(http.StatusNotFound, "transaction not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update transaction", err)
	}

	return &UpdateTransactionOutput{Status: http.StatusNoContent}, nil
}
