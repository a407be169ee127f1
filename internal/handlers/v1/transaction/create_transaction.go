package transaction

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ThangaBalajiS/biz-book/internal/ledger"
	"github.com/ThangaBalajiS/biz-book/internal/operator/actions"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Kind        string `json:"kind" required:"true" doc:"Transaction kind, e.g. BANK_CREDIT or CUSTOMER_PURCHASE"`
	Amount      string `json:"amount" required:"true" doc:"Positive decimal amount"`
	Date        string `json:"date,omitempty" format:"date-time" doc:"RFC3339 transaction date, defaults to now"`
	Description string `json:"description" doc:"Free-text description"`
	CustomerID  string `json:"customerID,omitempty" format:"uuid" doc:"Customer UUID, required for customer kinds"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" doc:"Owner UUID set by the fronting auth layer"`
	Body    CreateTransactionBody
}

// CreateTransactionResponse is the response body for creating a transaction.
type CreateTransactionResponse struct {
	ID string `json:"id" doc:"UUID of the created transaction"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Records a new transaction and classifies it on read.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput parses and validates the API input.
func parseCreateTransactionInput(input *CreateTransactionInput) (*actions.CreateTransaction, error) {
	ownerID, err := parseOwnerID(input.OwnerID)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	date := time.Now()
	if input.Body.Date != "" {
		date, err = time.Parse(time.RFC3339, input.Body.Date)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	var customerID uuid.NullUUID
	if input.Body.CustomerID != "" {
		id, err := uuid.FromString(input.Body.CustomerID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid customerID", err)
		}
		customerID = uuid.NullUUID{UUID: id, Valid: true}
	}

	return &actions.CreateTransaction{
		OwnerID:     ownerID,
		Kind:        ledger.Kind(input.Body.Kind),
		Amount:      amount,
		Date:        date,
		Description: input.Body.Description,
		CustomerID:  customerID,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	action, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		var unknownKind ledger.ErrUnknownKind
		switch {
		case errors.As(err, &unknownKind):
			return nil, huma.NewError(http.StatusBadRequest, "unknown transaction kind", err)
		case errors.Is(err, actions.ErrInvalidAmount),
			errors.Is(err, actions.ErrCustomerRequired):
			return nil, huma.NewError(http.StatusBadRequest, err.Error())
		case errors.Is(err, actions.ErrCustomerNotFound):
			return nil, huma.NewError(http.StatusNotFound, err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponse{ID: action.ID.String()},
	}, nil
}
