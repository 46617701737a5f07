package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/settings"
	"github.com/workwhisperer/timekeeper-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	preferencesService settings.PreferencesService
}

func NewSettingsHandler(preferencesService settings.PreferencesService) SettingsHandler {
	return &settingsHandlerImpl{preferencesService: preferencesService}
}

// Get implements SettingsHandler.
func (h *settingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.preferencesService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Update implements SettingsHandler. Absent fields are left unchanged.
func (h *settingsHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode settings update", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.preferencesService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Settings updated", result)
}
