package customer

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ThangaBalajiS/biz-book/internal/operator/actions"
	"github.com/ThangaBalajiS/biz-book/internal/storage/sqlconfig"
)

// UpdateCustomerBody is the request body for updating a customer.
type UpdateCustomerBody struct {
	Name  string `json:"name" required:"true" minLength:"1" doc:"Customer name, unique per owner"`
	Phone string `json:"phone" doc:"Phone number"`
}

// UpdateCustomerInput is the Huma input for updating a customer.
type UpdateCustomerInput struct {
	OwnerID    string `header:"X-Owner-ID" required:"true" doc:"Owner UUID set by the fronting auth layer"`
	CustomerID string `path:"customerID" format:"uuid" doc:"Customer UUID"`
	Body       UpdateCustomerBody
}

// UpdateCustomerOutput is the Huma output for updating a customer.
type UpdateCustomerOutput struct {
	Status int
}

// UpdateCustomerHandler handles PUT /v1/customer/{customerID}.
type UpdateCustomerHandler struct {
	Operator actionProcessor
}

// NewUpdateCustomerHandler creates a new UpdateCustomerHandler.
func NewUpdateCustomerHandler(op actionProcessor) *UpdateCustomerHandler {
	return &UpdateCustomerHandler{Operator: op}
}

// Register registers the update customer endpoint with the Huma API.
func (h *UpdateCustomerHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-customer",
		Method:        http.MethodPut,
		Path:          "/v1/customer/{customerID}",
		Summary:       "Update customer",
		Description:   "Renames a customer or changes the phone number.",
		Tags:          []string{"Customers"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *UpdateCustomerHandler) handle(ctx context.Context, input *UpdateCustomerInput) (*UpdateCustomerOutput, error) {
	ownerID, err := parseOwnerID(input.OwnerID)
	if err != nil {
		return nil, err
	}
	customerID, err := parseCustomerID(input.CustomerID)
	if err != nil {
		return nil, err
	}

	action := &actions.UpdateCustomer{
		OwnerID:    ownerID,
		CustomerID: customerID,
		Name:       input.Body.Name,
		Phone:      input.Body.Phone,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		switch {
		case errors.Is(err, actions.ErrCustomerNameRequired):
			return nil, huma.NewError(http.StatusBadRequest, err.Error())
		case errors.Is(err, sqlconfig.ErrDuplicateCustomerName):
			return nil, huma.NewError(http.StatusConflict, "customer name already exists")
		case errors.Is(err, sqlconfig.ErrNotFound):
			return nil, huma.NewError(http.StatusNotFound, "customer not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update customer", err)
	}

	return &UpdateCustomerOutput{Status: http.StatusNoContent}, nil
}
