package service

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/ThangaBalajiS/biz-book/internal/ledger"
	"github.com/ThangaBalajiS/biz-book/internal/storage"
	"github.com/ThangaBalajiS/biz-book/internal/storage/sqlconfig"
)

// SettingsService handles the single per-owner settings record.
type SettingsService struct {
	storage *storage.Storage
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(store *storage.Storage) *SettingsService {
	return &SettingsService{storage: store}
}

// GetSettings returns the owner's settings, creating the all-zero default
// row on first access.
func (s *SettingsService) GetSettings(ctx context.Context, ownerID uuid.UUID) (*sqlconfig.Settings, error) {
	settings, err := s.storage.Settings.FindByOwner(ctx, ownerID)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return s.storage.Settings.Insert(ctx, ownerID)
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// Openings extracts the engine's opening balances from the settings row.
func (s *SettingsService) Openings(ctx context.Context, ownerID uuid.UUID) (ledger.Openings, error) {
	settings, err := s.GetSettings(ctx, ownerID)
	if err != nil {
		return ledger.Openings{}, err
	}
	return ledger.Openings{
		Bank:        settings.OpeningBankBalance,
		AachiMasala: settings.OpeningAachiMasala,
	}, nil
}
