package settings

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/ThangaBalajiS/biz-book/internal/operator/actions"
)

// actionProcessor enqueues a write action and waits for the result. The
// operator delegator implements it.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// UpdateSettingsBody is the request body for saving settings.
type UpdateSettingsBody struct {
	BusinessName           string `json:"businessName" doc:"Business display name"`
	OpeningBankBalance     string `json:"openingBankBalance" required:"true" doc:"Bank ledger opening balance"`
	OpeningBankDate        string `json:"openingBankDate" format:"date-time" doc:"RFC3339 date the bank opening balance was taken, defaults to now"`
	OpeningAachiMasala     string `json:"openingAachiMasala" required:"true" doc:"Aachi Masala ledger opening balance"`
	OpeningAachiMasalaDate string `json:"openingAachiMasalaDate" format:"date-time" doc:"RFC3339 date the Aachi Masala opening balance was taken, defaults to now"`
}

// UpdateSettingsInput is the Huma input for saving settings.
type UpdateSettingsInput struct {
	OwnerID string `header:"X-Owner-ID" required:"true" doc:"Owner UUID set by the fronting auth layer"`
	Body    UpdateSettingsBody
}

// UpdateSettingsOutput is the Huma output for saving settings.
type UpdateSettingsOutput struct {
	Status int
}

// UpdateSettingsHandler handles PUT /v1/settings.
type UpdateSettingsHandler struct {
	Operator actionProcessor
}

// NewUpdateSettingsHandler creates a new UpdateSettingsHandler.
func NewUpdateSettingsHandler(op actionProcessor) *UpdateSettingsHandler {
	return &UpdateSettingsHandler{Operator: op}
}

// Register registers the update settings endpoint with the Huma API.
func (h *UpdateSettingsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-settings",
		Method:        http.MethodPut,
		Path:          "/v1/settings",
		Summary:       "Update settings",
		Description:   "Saves owner settings, creating the row when the owner has none.",
		Tags:          []string{"Settings"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

// parseUpdateSettingsInput parses and validates the API input.
func parseUpdateSettingsInput(input *UpdateSettingsInput) (*actions.UpdateSettings, error) {
	ownerID, err := parseOwnerID(input.OwnerID)
	if err != nil {
		return nil, err
	}

	openingBank, err := decimal.NewFromString(input.Body.OpeningBankBalance)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid openingBankBalance", err)
	}
	openingAachi, err := decimal.NewFromString(input.Body.OpeningAachiMasala)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid openingAachiMasala", err)
	}

	action := &actions.UpdateSettings{
		OwnerID:            ownerID,
		BusinessName:       input.Body.BusinessName,
		OpeningBankBalance: openingBank,
		OpeningAachiMasala: openingAachi,
	}

	if input.Body.OpeningBankDate != "" {
		action.OpeningBankDate, err = time.Parse(time.RFC3339, input.Body.OpeningBankDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid openingBankDate", err)
		}
	}
	if input.Body.OpeningAachiMasalaDate != "" {
		action.OpeningAachiMasalaDate, err = time.Parse(time.RFC3339, input.Body.OpeningAachiMasalaDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid openingAachiMasalaDate", err)
		}
	}

	return action, nil
}

func (h *UpdateSettingsHandler) handle(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	action, err := parseUpdateSettingsInput(input)
	if err != nil {
		return nil, err
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update settings", err)
	}

	return &UpdateSettingsOutput{Status: http.StatusNoContent}, nil
}
