package customer

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ThangaBalajiS/biz-book/internal/operator/actions"
	"github.com/ThangaBalajiS/biz-book/internal/storage/sqlconfig"
)

// CreateCustomerBody is the request body for creating a customer.
type CreateCustomerBody struct {
	Name  string `json:"name" required:"true" minLength:"1" doc:"Customer name, unique per owner"`
	Phone string `json:"phone" doc:"Phone number"`
}

// CreateCustomerInput is the Huma input for creating a customer.
type CreateCustomerInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" doc:"Owner UUID set by the fronting auth layer"`
	Body    CreateCustomerBody
}

// CreateCustomerResponse is the response body for creating a customer.
type CreateCustomerResponse struct {
	ID string `json:"id" doc:"UUID of the created customer"`
}

// CreateCustomerOutput is the Huma output for creating a customer.
type CreateCustomerOutput struct {
	Status int
	Body   CreateCustomerResponse
}

// CreateCustomerHandler handles POST /v1/customer.
type CreateCustomerHandler struct {
	Operator actionProcessor
}

// NewCreateCustomerHandler creates a new CreateCustomerHandler.
func NewCreateCustomerHandler(op actionProcessor) *CreateCustomerHandler {
	return &CreateCustomerHandler{Operator: op}
}

// Register registers the create customer endpoint with the Huma API.
func (h *CreateCustomerHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-customer",
		Method:        http.MethodPost,
		Path:          "/v1/customer",
		Summary:       "Create customer",
		Description:   "Adds a customer. Names are unique per owner.",
		Tags:          []string{"Customers"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateCustomerHandler) handle(ctx context.Context, input *CreateCustomerInput) (*CreateCustomerOutput, error) {
	ownerID, err := parseOwnerID(input.OwnerID)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateCustomer{
		OwnerID: ownerID,
		Name:    input.Body.Name,
		Phone:   input.Body.Phone,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		switch {
		case errors.Is(err, actions.ErrCustomerNameRequired):
			return nil, huma.NewError(http.StatusBadRequest, err.Error())
		case errors.Is(err, sqlconfig.ErrDuplicateCustomerName):
			return nil, huma.NewError(http.StatusConflict, "customer name already exists")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create customer", err)
	}

	return &CreateCustomerOutput{
		Status: http.StatusCreated,
		Body:   CreateCustomerResponse{ID: action.ID.String()},
	}, nil
}
