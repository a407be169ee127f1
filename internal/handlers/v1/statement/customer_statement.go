package statement

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ThangaBalajiS/biz-book/internal/service"
	"github.com/ThangaBalajiS/biz-book/internal/storage/sqlconfig"
)

// CustomerStatementInput is the Huma input for a customer statement.
type CustomerStatementInput struct {
	OwnerID    string `header:"X-Owner-ID" required:"true" doc:"Owner UUID set by the fronting auth layer"`
	CustomerID string `path:"customerID" format:"uuid" doc:"Customer UUID"`
}

// CustomerStatementOutput is the Huma output for a customer statement.
type CustomerStatementOutput struct {
	Body Statement
}

// customerStatementGetter is the interface for building a customer statement.
type customerStatementGetter interface {
	CustomerStatement(ctx context.Context, ownerID, customerID uuid.UUID) (*service.Statement, error)
}

// CustomerStatementHandler handles GET /v1/statement/customer/{customerID}.
type CustomerStatementHandler struct {
	StatementService customerStatementGetter
}

// NewCustomerStatementHandler creates a new CustomerStatementHandler.
func NewCustomerStatementHandler(svc customerStatementGetter) *CustomerStatementHandler {
	return &CustomerStatementHandler{StatementService: svc}
}

// Register registers the customer statement endpoint with the Huma API.
func (h *CustomerStatementHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "customer-statement",
		Method:      http.MethodGet,
		Path:        "/v1/statement/customer/{customerID}",
		Summary:     "Customer statement",
		Description: "Returns one customer's outstanding-ledger statement from a zero opening, newest first.",
		Tags:        []string{"Statements"},
	}, h.handle)
}

func (h *CustomerStatementHandler) handle(ctx context.Context, input *CustomerStatementInput) (*CustomerStatementOutput, error) {
	ownerID, err := parseOwnerID(input.OwnerID)
	if err != nil {
		return nil, err
	}
	customerID, err := uuid.FromString(input.CustomerID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid customerID", err)
	}

	stmt, err := h.StatementService.CustomerStatement(ctx, ownerID, customerID)
	if err != nil {
		if errors.Is(err, sqlconfig.ErrNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "customer not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build customer statement", err)
	}

	return &CustomerStatementOutput{Body: fromService(stmt)}, nil
}
