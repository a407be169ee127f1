package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/ThangaBalajiS/biz-book/internal/ledger"
	"github.com/ThangaBalajiS/biz-book/internal/storage"
	"github.com/ThangaBalajiS/biz-book/internal/storage/sqlconfig"
)

// StatementService reconstructs running-balance statements for the bank
// and aachi-masala ledgers and per-customer outstanding statements. The
// output feeds display and report rendering without recomputation.
type StatementService struct {
	storage  *storage.Storage
	settings *SettingsService
}

// NewStatementService creates a new StatementService.
func NewStatementService(store *storage.Storage, settings *SettingsService) *StatementService {
	return &StatementService{storage: store, settings: settings}
}

// BankStatement returns the owner's bank ledger trajectory.
func (s *StatementService) BankStatement(ctx context.Context, ownerID uuid.UUID) (*Statement, error) {
	openings, err := s.settings.Openings(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.ledgerStatement(ctx, ownerID, openings.Bank, ledger.LedgerBank)
}

// AachiMasalaStatement returns the owner's aachi-masala ledger trajectory.
func (s *StatementService) AachiMasalaStatement(ctx context.Context, ownerID uuid.UUID) (*Statement, error) {
	openings, err := s.settings.Openings(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.ledgerStatement(ctx, ownerID, openings.AachiMasala, ledger.LedgerAachiMasala)
}

// CustomerStatement returns one customer's outstanding trajectory. The
// opening is always zero; only the owner-level bank and aachi-masala
// ledgers have opening balances.
func (s *StatementService) CustomerStatement(ctx context.Context, ownerID, customerID uuid.UUID) (*Statement, error) {
	if _, err := s.storage.Customers.FindByID(ctx, ownerID, customerID); err != nil {
		return nil, err
	}

	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		OwnerID:    ownerID,
		CustomerID: &customerID,
	})
	if err != nil {
		return nil, err
	}

	entries, err := ledger.CustomerRunningBalances(sqlconfig.ToLedgerTransactions(rows), customerID)
	if err != nil {
		return nil, err
	}

	statement := newStatement(decimal.Zero, entries)
	return &statement, nil
}

func (s *StatementService) ledgerStatement(ctx context.Context, ownerID uuid.UUID, opening decimal.Decimal, l ledger.Ledger) (*Statement, error) {
	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}

	entries, err := ledger.RunningBalances(opening, sqlconfig.ToLedgerTransactions(rows), l)
	if err != nil {
		return nil, err
	}

	statement := newStatement(opening, entries)
	return &statement, nil
}
