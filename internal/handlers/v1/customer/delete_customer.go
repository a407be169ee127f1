package customer

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ThangaBalajiS/biz-book/internal/operator/actions"
	"github.com/ThangaBalajiS/biz-book/internal/storage/sqlconfig"
)

// DeleteCustomerInput is the Huma input for deleting a customer.
type DeleteCustomerInput struct {
	OwnerID    string `header:"X-Owner-ID" required:"true" doc:"Owner UUID set by the fronting auth layer"`
	CustomerID string `path:"customerID" format:"uuid" doc:"Customer UUID"`
}

// DeleteCustomerOutput is the Huma output for deleting a customer.
type DeleteCustomerOutput struct {
	Status int
}

// DeleteCustomerHandler handles DELETE /v1/customer/{customerID}.
type DeleteCustomerHandler struct {
	Operator actionProcessor
}

// NewDeleteCustomerHandler creates a new DeleteCustomerHandler.
func NewDeleteCustomerHandler(op actionProcessor) *DeleteCustomerHandler {
	return &DeleteCustomerHandler{Operator: op}
}

// Register registers the delete customer endpoint with the Huma API.
func (h *DeleteCustomerHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-customer",
		Method:        http.MethodDelete,
		Path:          "/v1/customer/{customerID}",
		Summary:       "Delete customer",
		Description:   "Removes a customer that has no transactions.",
		Tags:          []string{"Customers"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteCustomerHandler) handle(ctx context.Context, input *DeleteCustomerInput) (*DeleteCustomerOutput, error) {
	ownerID, err := parseOwnerID(input.OwnerID)
	if err != nil {
		return nil, err
	}
	customerID, err := parseCustomerID(input.CustomerID)
	if err != nil {
		return nil, err
	}

	action := &actions.DeleteCustomer{OwnerID: ownerID, CustomerID: customerID}
	if err := h.Operator.Process(ctx, action); err != nil {
		switch {
		case errors.Is(err, actions.ErrCustomerHasTransactions):
			return nil, huma.NewError(http.StatusConflict, err.Error())
		case errors.Is(err, sqlconfig.ErrNotFound):
			return nil, huma.NewError(http.StatusNotFound, "customer not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete customer", err)
	}

	return &DeleteCustomerOutput{Status: http.StatusNoContent}, nil
}
