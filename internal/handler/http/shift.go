package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/shift"
	"github.com/workwhisperer/timekeeper-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Advance(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	cardService shift.CardService
}

func NewShiftHandler(cardService shift.CardService) ShiftHandler {
	return &shiftHandlerImpl{cardService: cardService}
}

// Get implements ShiftHandler.
func (h *shiftHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.cardService.GetCard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Advance implements ShiftHandler.
func (h *shiftHandlerImpl) Advance(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeConfirm(w, r)
	if !ok {
		return
	}

	result, err := h.cardService.Advance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Reset implements ShiftHandler.
func (h *shiftHandlerImpl) Reset(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeConfirm(w, r)
	if !ok {
		return
	}

	result, err := h.cardService.Reset(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// decodeConfirm reads the confirmation body. An empty body means an
// unconfirmed preview, not an error.
func decodeConfirm(w http.ResponseWriter, r *http.Request) (shift.ConfirmRequest, bool) {
	var req shift.ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("Failed to decode confirm request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return shift.ConfirmRequest{}, false
	}
	return req, true
}
