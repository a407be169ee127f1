package customer

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ThangaBalajiS/biz-book/internal/service"
	"github.com/ThangaBalajiS/biz-book/internal/storage/sqlconfig"
)

// CustomerTransaction is the transaction entry embedded in a customer
// detail response.
type CustomerTransaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	Kind        string `json:"kind" doc:"Transaction kind"`
	Amount      string `json:"amount" doc:"Decimal amount"`
	Date        string `json:"date" doc:"RFC3339 transaction date"`
	Description string `json:"description,omitempty" doc:"Free-text description"`
}

// GetCustomerInput is the Huma input for fetching a customer.
type GetCustomerInput struct {
	OwnerID    string `header:"X-Owner-ID" required:"true" doc:"Owner UUID set by the fronting auth layer"`
	CustomerID string `path:"customerID" format:"uuid" doc:"Customer UUID"`
}

// GetCustomerResponseBody is the response body for fetching a customer.
type GetCustomerResponseBody struct {
	Customer     Customer              `json:"customer" doc:"The customer with derived outstanding"`
	Transactions []CustomerTransaction `json:"transactions" doc:"The customer's transactions, newest first"`
}

// GetCustomerOutput is the Huma output for fetching a customer.
type GetCustomerOutput struct {
	Body GetCustomerResponseBody
}

// customerGetter is the interface for fetching a customer with history.
type customerGetter interface {
	GetCustomer(ctx context.Context, ownerID, customerID uuid.UUID) (*service.CustomerDetail, error)
}

// GetCustomerHandler handles GET /v1/customer/{customerID}.
type GetCustomerHandler struct {
	CustomerService customerGetter
}

// NewGetCustomerHandler creates a new GetCustomerHandler.
func NewGetCustomerHandler(svc customerGetter) *GetCustomerHandler {
	return &GetCustomerHandler{CustomerService: svc}
}

// Register registers the get customer endpoint with the Huma API.
func (h *GetCustomerHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-customer",
		Method:      http.MethodGet,
		Path:        "/v1/customer/{customerID}",
		Summary:     "Get customer",
		Description: "Returns one customer with outstanding balance and transaction history.",
		Tags:        []string{"Customers"},
	}, h.handle)
}

func (h *GetCustomerHandler) handle(ctx context.Context, input *GetCustomerInput) (*GetCustomerOutput, error) {
	ownerID, err := parseOwnerID(input.OwnerID)
	if err != nil {
		return nil, err
	}
	customerID, err := parseCustomerID(input.CustomerID)
	if err != nil {
		return nil, err
	}

	detail, err := h.CustomerService.GetCustomer(ctx, ownerID, customerID)
	if err != nil {
		if errors.Is(err, sqlconfig.ErrNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "customer not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get customer", err)
	}

	resp := GetCustomerResponseBody{
		Customer:     fromService(detail.Customer),
		Transactions: make([]CustomerTransaction, len(detail.Transactions)),
	}
	for i, tx := range detail.Transactions {
		resp.Transactions[i] = CustomerTransaction{
			ID:          tx.ID.String(),
			Kind:        string(tx.Kind),
			Amount:      tx.Amount.String(),
			Date:        tx.Date.Format(time.RFC3339),
			Description: tx.Description,
		}
	}

	return &GetCustomerOutput{Body: resp}, nil
}
