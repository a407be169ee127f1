package statement

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ThangaBalajiS/biz-book/internal/service"
)

// AachiMasalaStatementInput is the Huma input for the Aachi Masala statement.
type AachiMasalaStatementInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" doc:"Owner UUID set by the fronting auth layer"`
}

// AachiMasalaStatementOutput is the Huma output for the Aachi Masala statement.
type AachiMasalaStatementOutput struct {
	Body Statement
}

// aachiMasalaStatementGetter is the interface for building the Aachi Masala statement.
type aachiMasalaStatementGetter interface {
	AachiMasalaStatement(ctx context.Context, ownerID uuid.UUID) (*service.Statement, error)
}

// AachiMasalaStatementHandler handles GET /v1/statement/aachi-masala.
type AachiMasalaStatementHandler struct {
	StatementService aachiMasalaStatementGetter
}

// NewAachiMasalaStatementHandler creates a new AachiMasalaStatementHandler.
func NewAachiMasalaStatementHandler(svc aachiMasalaStatementGetter) *AachiMasalaStatementHandler {
	return &AachiMasalaStatementHandler{StatementService: svc}
}

// Register registers the Aachi Masala statement endpoint with the Huma API.
func (h *AachiMasalaStatementHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "aachi-masala-statement",
		Method:      http.MethodGet,
		Path:        "/v1/statement/aachi-masala",
		Summary:     "Aachi Masala statement",
		Description: "Returns the Aachi Masala ledger running-balance statement, newest first.",
		Tags:        []string{"Statements"},
	}, h.handle)
}

func (h *AachiMasalaStatementHandler) handle(ctx context.Context, input *AachiMasalaStatementInput) (*AachiMasalaStatementOutput, error) {
	ownerID, err := parseOwnerID(input.OwnerID)
	if err != nil {
		return nil, err
	}

	stmt, err := h.StatementService.AachiMasalaStatement(ctx, ownerID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build aachi masala statement", err)
	}

	return &AachiMasalaStatementOutput{Body: fromService(stmt)}, nil
}
