package settings

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/ThangaBalajiS/biz-book/internal/storage/sqlconfig"
)

// Settings is the API response model for owner settings.
type Settings struct {
	BusinessName           string `json:"businessName" doc:"Business display name"`
	OpeningBankBalance     string `json:"openingBankBalance" doc:"Bank ledger opening balance"`
	OpeningBankDate        string `json:"openingBankDate" doc:"RFC3339 date the bank opening balance was taken"`
	OpeningAachiMasala     string `json:"openingAachiMasala" doc:"Aachi Masala ledger opening balance"`
	OpeningAachiMasalaDate string `json:"openingAachiMasalaDate" doc:"RFC3339 date the Aachi Masala opening balance was taken"`
}

func fromRow(row *sqlconfig.Settings) Settings {
	return Settings{
		BusinessName:           row.BusinessName,
		OpeningBankBalance:     row.OpeningBankBalance.String(),
		OpeningBankDate:        row.OpeningBankDate.Format(time.RFC3339),
		OpeningAachiMasala:     row.OpeningAachiMasala.String(),
		OpeningAachiMasalaDate: row.OpeningAachiMasalaDate.Format(time.RFC3339),
	}
}

func parseOwnerID(header string) (uuid.UUID, error) {
	ownerID, err := uuid.FromString(header)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid X-Owner-ID", err)
	}
	return ownerID, nil
}

// GetSettingsInput is the Huma input for fetching settings.
type GetSettingsInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" doc:"Owner UUID set by the fronting auth layer"`
}

// GetSettingsOutput is the Huma output for fetching settings.
type GetSettingsOutput struct {
	Body Settings
}

// settingsGetter is the interface for reading owner settings.
type settingsGetter interface {
	GetSettings(ctx context.Context, ownerID uuid.UUID) (*sqlconfig.Settings, error)
}

// GetSettingsHandler handles GET /v1/settings.
type GetSettingsHandler struct {
	SettingsService settingsGetter
}

// NewGetSettingsHandler creates a new GetSettingsHandler.
func NewGetSettingsHandler(svc settingsGetter) *GetSettingsHandler {
	return &GetSettingsHandler{SettingsService: svc}
}

// Register registers the get settings endpoint with the Huma API.
func (h *GetSettingsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-settings",
		Method:      http.MethodGet,
		Path:        "/v1/settings",
		Summary:     "Get settings",
		Description: "Returns owner settings, creating the zero-balance defaults on first access.",
		Tags:        []string{"Settings"},
	}, h.handle)
}

func (h *GetSettingsHandler) handle(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error) {
	ownerID, err := parseOwnerID(input.OwnerID)
	if err != nil {
		return nil, err
	}

	row, err := h.SettingsService.GetSettings(ctx, ownerID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get settings", err)
	}

	return &GetSettingsOutput{Body: fromRow(row)}, nil
}
