package statement

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ThangaBalajiS/biz-book/internal/service"
)

// BankStatementInput is the Huma input for the bank statement.
type BankStatementInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" doc:"Owner UUID set by the fronting auth layer"`
}

// BankStatementOutput is the Huma output for the bank statement.
type BankStatementOutput struct {
	Body Statement
}

// bankStatementGetter is the interface for building the bank statement.
type bankStatementGetter interface {
	BankStatement(ctx context.Context, ownerID uuid.UUID) (*service.Statement, error)
}

// BankStatementHandler handles GET /v1/statement/bank.
type BankStatementHandler struct {
	StatementService bankStatementGetter
}

// NewBankStatementHandler creates a new BankStatementHandler.
func NewBankStatementHandler(svc bankStatementGetter) *BankStatementHandler {
	return &BankStatementHandler{StatementService: svc}
}

// Register registers the bank statement endpoint with the Huma API.
func (h *BankStatementHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "bank-statement",
		Method:      http.MethodGet,
		Path:        "/v1/statement/bank",
		Summary:     "Bank statement",
		Description: "Returns the bank ledger running-balance statement, newest first.",
		Tags:        []string{"Statements"},
	}, h.handle)
}

func (h *BankStatementHandler) handle(ctx context.Context, input *BankStatementInput) (*BankStatementOutput, error) {
	ownerID, err := parseOwnerID(input.OwnerID)
	if err != nil {
		return nil, err
	}

	stmt, err := h.StatementService.BankStatement(ctx, ownerID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build bank statement", err)
	}

	return &BankStatementOutput{Body: fromService(stmt)}, nil
}
