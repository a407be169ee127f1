package customer

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ThangaBalajiS/biz-book/internal/logging"
	"github.com/ThangaBalajiS/biz-book/internal/service"
)

// ListCustomersInput is the Huma input for listing customers.
type ListCustomersInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" doc:"Owner UUID set by the fronting auth layer"`
}

// ListCustomersResponseBody is the response body for listing customers.
type ListCustomersResponseBody struct {
	Customers []Customer `json:"customers" doc:"Customers ordered by name"`
}

// ListCustomersOutput is the Huma output for listing customers.
type ListCustomersOutput struct {
	Body ListCustomersResponseBody
}

// customerLister is the interface for listing customers.
type customerLister interface {
	ListCustomers(ctx context.Context, ownerID uuid.UUID) ([]service.Customer, error)
}

// ListCustomersHandler handles GET /v1/customer.
type ListCustomersHandler struct {
	CustomerService customerLister
}

// NewListCustomersHandler creates a new ListCustomersHandler.
func NewListCustomersHandler(svc customerLister) *ListCustomersHandler {
	return &ListCustomersHandler{CustomerService: svc}
}

// Register registers the list customers endpoint with the Huma API.
func (h *ListCustomersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-customers",
		Method:      http.MethodGet,
		Path:        "/v1/customer",
		Summary:     "List customers",
		Description: "Returns the owner's customers with derived outstanding balances.",
		Tags:        []string{"Customers"},
	}, h.handle)
}

func (h *ListCustomersHandler) handle(ctx context.Context, input *ListCustomersInput) (*ListCustomersOutput, error) {
	logData := logging.GetLogData(ctx)
	ownerID, err := parseOwnerID(input.OwnerID)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listCustomersMs")
	}
	customers, err := h.CustomerService.ListCustomers(ctx, ownerID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list customers", err)
	}

	if logData != nil {
		logData.AddData("customerCount", len(customers))
	}

	resp := ListCustomersResponseBody{
		Customers: make([]Customer, len(customers)),
	}
	for i, c := range customers {
		resp.Customers[i] = fromService(c)
	}

	return &ListCustomersOutput{Body: resp}, nil
}
