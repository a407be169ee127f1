package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ThangaBalajiS/biz-book/internal/ledger"
	"github.com/ThangaBalajiS/biz-book/internal/logging"
)

// RecentTransaction is a recent-activity entry on the dashboard.
type RecentTransaction struct {
	ID           string `json:"id" doc:"Transaction UUID"`
	Kind         string `json:"kind" doc:"Transaction kind"`
	Amount       string `json:"amount" doc:"Decimal amount"`
	Date         string `json:"date" doc:"RFC3339 transaction date"`
	Description  string `json:"description,omitempty" doc:"Free-text description"`
	CustomerName string `json:"customerName,omitempty" doc:"Customer name for customer kinds"`
}

// Dashboard is the API response model for the dashboard summary.
type Dashboard struct {
	BankBalance        string              `json:"bankBalance" doc:"Current bank ledger balance"`
	TotalOutstanding   string              `json:"totalOutstanding" doc:"Sum of all customer outstanding balances"`
	AachiMasalaBalance string              `json:"aachiMasalaBalance" doc:"Current Aachi Masala ledger balance"`
	TotalPurchases     string              `json:"totalPurchases" doc:"Customer purchases plus Aachi Masala purchases"`
	CustomerCount      int                 `json:"customerCount" doc:"Number of customers"`
	RecentActivity     []RecentTransaction `json:"recentActivity" doc:"Most recent transactions, newest first"`
}

// GetDashboardInput is the Huma input for the dashboard.
type GetDashboardInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" doc:"Owner UUID set by the fronting auth layer"`
}

// GetDashboardOutput is the Huma output for the dashboard.
type GetDashboardOutput struct {
	Body Dashboard
}

// dashboardGetter is the interface for building the dashboard summary.
type dashboardGetter interface {
	GetDashboard(ctx context.Context, ownerID uuid.UUID) (*ledger.Summary, error)
}

// GetDashboardHandler handles GET /v1/dashboard.
type GetDashboardHandler struct {
	DashboardService dashboardGetter
}

// NewGetDashboardHandler creates a new GetDashboardHandler.
func NewGetDashboardHandler(svc dashboardGetter) *GetDashboardHandler {
	return &GetDashboardHandler{DashboardService: svc}
}

// Register registers the dashboard endpoint with the Huma API.
func (h *GetDashboardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard",
		Summary:     "Get dashboard",
		Description: "Returns the owner's ledger balances, totals, and recent activity.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *GetDashboardHandler) handle(ctx context.Context, input *GetDashboardInput) (*GetDashboardOutput, error) {
	logData := logging.GetLogData(ctx)
	ownerID, err := uuid.FromString(input.OwnerID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid X-Owner-ID", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getDashboardMs")
	}
	summary, err := h.DashboardService.GetDashboard(ctx, ownerID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get dashboard", err)
	}

	resp := Dashboard{
		BankBalance:        summary.BankBalance.String(),
		TotalOutstanding:   summary.TotalOutstanding.String(),
		AachiMasalaBalance: summary.AachiMasalaBalance.String(),
		TotalPurchases:     summary.TotalPurchases.String(),
		CustomerCount:      summary.CustomerCount,
		RecentActivity:     make([]RecentTransaction, len(summary.Recent)),
	}
	for i, tx := range summary.Recent {
		resp.RecentActivity[i] = RecentTransaction{
			ID:           tx.ID.String(),
			Kind:         string(tx.Kind),
			Amount:       tx.Amount.String(),
			Date:         tx.Date.Format(time.RFC3339),
			Description:  tx.Description,
			CustomerName: tx.CustomerName,
		}
	}

	return &GetDashboardOutput{Body: resp}, nil
}
