package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ThangaBalajiS/biz-book/internal/ledger"
	"github.com/ThangaBalajiS/biz-book/internal/logging"
	"github.com/ThangaBalajiS/biz-book/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
// All filters are optional; the ledger filter selects transactions whose
// kind affects that ledger.
type ListTransactionsInput struct {
	OwnerID    string `header:"X-Owner-ID" required:"true" doc:"Owner UUID set by the fronting auth layer"`
	Kind       string `query:"kind" doc:"Filter by transaction kind"`
	CustomerID string `query:"customerID" format:"uuid" doc:"Filter by customer UUID"`
	Ledger     string `query:"ledger" enum:"bank,outstanding,aachi-masala" doc:"Filter by affected ledger"`
	FromDate   string `query:"fromDate" format:"date-time" doc:"Lower bound on transaction date"`
	ToDate     string `query:"toDate" format:"date-time" doc:"Upper bound on transaction date, inclusive of the whole day"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Transactions, newest first"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, filter service.TransactionListFilter) ([]ledger.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/transaction.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transaction",
		Summary:     "List transactions",
		Description: "Returns the owner's transactions, optionally filtered by kind, customer, ledger, and date range.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses and validates the API input.
func parseListTransactionsInput(input *ListTransactionsInput) (service.TransactionListFilter, error) {
	filter := service.TransactionListFilter{}

	ownerID, err := parseOwnerID(input.OwnerID)
	if err != nil {
		return filter, err
	}
	filter.OwnerID = ownerID

	if input.Kind != "" {
		kind, err := ledger.ParseKind(input.Kind)
		if err != nil {
			return filter, huma.NewError(http.StatusBadRequest, "unknown transaction kind", err)
		}
		filter.Kind = &kind
	}

	if input.CustomerID != "" {
		customerID, err := uuid.FromString(input.CustomerID)
		if err != nil {
			return filter, huma.NewError(http.StatusBadRequest, "invalid customerID", err)
		}
		filter.CustomerID = &customerID
	}

	switch input.Ledger {
	case "":
	case "bank":
		l := ledger.LedgerBank
		filter.Ledger = &l
	case "outstanding":
		l := ledger.LedgerOutstanding
		filter.Ledger = &l
	case "aachi-masala":
		l := ledger.LedgerAachiMasala
		filter.Ledger = &l
	default:
		return filter, huma.NewError(http.StatusBadRequest, "unknown ledger")
	}

	if input.FromDate != "" {
		fromDate, err := time.Parse(time.RFC3339, input.FromDate)
		if err != nil {
			return filter, huma.NewError(http.StatusBadRequest, "invalid fromDate", err)
		}
		filter.FromDate = &fromDate
	}

	if input.ToDate != "" {
		toDate, err := time.Parse(time.RFC3339, input.ToDate)
		if err != nil {
			return filter, huma.NewError(http.StatusBadRequest, "invalid toDate", err)
		}
		filter.ToDate = &toDate
	}

	return filter, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	filter, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.ListTransactions(ctx, filter)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, tx := range transactions {
		resp.Transactions[i] = fromLedger(tx)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
