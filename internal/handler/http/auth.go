package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/auth"
	"github.com/workwhisperer/timekeeper-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	IssueToken(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &authHandlerImpl{authService: authService}
}

// IssueToken implements AuthHandler.
func (h *authHandlerImpl) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req auth.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode token request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.IssueToken(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
