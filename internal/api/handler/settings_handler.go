package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cras-office/agenda/internal/core/domain"
)

// Settings are the non-secret runtime settings shown on the settings page.
type Settings struct {
	StoreBackend      string
	ExtractionEnabled bool
	TokenTTL          time.Duration
	ReportTimezone    string
}

type settingsResponse struct {
	StoreBackend      string   `json:"storeBackend"`
	ExtractionEnabled bool     `json:"extractionEnabled"`
	TokenTTL          string   `json:"tokenTtl"`
	ReportTimezone    string   `json:"reportTimezone"`
	Roles             []string `json:"roles"`
	Reasons           []string `json:"reasons"`
	Statuses          []string `json:"statuses"`
}

// SettingsHandler serves the settings page.
type SettingsHandler struct {
	settings Settings
}

func NewSettingsHandler(settings Settings) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get handles GET /v1/settings.
//
// @Summary      Runtime settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  settingsResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	ttl := "none"
	if h.settings.TokenTTL > 0 {
		ttl = h.settings.TokenTTL.String()
	}

	resp := settingsResponse{
		StoreBackend:      h.settings.StoreBackend,
		ExtractionEnabled: h.settings.ExtractionEnabled,
		TokenTTL:          ttl,
		ReportTimezone:    h.settings.ReportTimezone,
		Roles:             []string{string(domain.RoleAdmin), string(domain.RoleRegistrar)},
	}
	for _, r := range domain.Reasons {
		resp.Reasons = append(resp.Reasons, string(r))
	}
	for _, s := range domain.Statuses {
		resp.Statuses = append(resp.Statuses, string(s))
	}
	return c.JSON(http.StatusOK, resp)
}
