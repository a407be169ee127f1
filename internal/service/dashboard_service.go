package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ThangaBalajiS/biz-book/internal/ledger"
	"github.com/ThangaBalajiS/biz-book/internal/storage"
	"github.com/ThangaBalajiS/biz-book/internal/storage/sqlconfig"
)

// DashboardService composes the owner's dashboard summary. Read-only; the
// engine does all the arithmetic.
type DashboardService struct {
	storage  *storage.Storage
	settings *SettingsService
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(store *storage.Storage, settings *SettingsService) *DashboardService {
	return &DashboardService{storage: store, settings: settings}
}

// GetDashboard returns the dashboard summary for one owner.
func (s *DashboardService) GetDashboard(ctx context.Context, ownerID uuid.UUID) (*ledger.Summary, error) {
	openings, err := s.settings.Openings(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	txns := sqlconfig.ToLedgerTransactions(rows)

	customers, err := s.storage.Customers.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}
	for i := range txns {
		if txns[i].CustomerID.Valid {
			txns[i].CustomerName = names[txns[i].CustomerID.UUID]
		}
	}

	summary, err := ledger.Summarize(openings, txns, len(customers))
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
