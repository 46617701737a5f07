package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/workshift"
	"github.com/workwhisperer/timekeeper-backend-go/internal/handler/http/response"
)

type WorkShiftHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	SetActive(w http.ResponseWriter, r *http.Request)
}

type workShiftHandlerImpl struct {
	shiftService workshift.ShiftService
}

func NewWorkShiftHandler(shiftService workshift.ShiftService) WorkShiftHandler {
	return &workShiftHandlerImpl{shiftService: shiftService}
}

// List implements WorkShiftHandler.
func (h *workShiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Create implements WorkShiftHandler.
func (h *workShiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req workshift.SaveShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode work shift", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.shiftService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Work shift created", result)
}

// Update implements WorkShiftHandler.
func (h *workShiftHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req workshift.SaveShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode work shift", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	id := chi.URLParam(r, "id")
	result, err := h.shiftService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Work shift updated", result)
}

// Delete implements WorkShiftHandler.
func (h *workShiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.shiftService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Work shift deleted", nil)
}

// SetActive implements WorkShiftHandler.
func (h *workShiftHandlerImpl) SetActive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	result, err := h.shiftService.SetActive(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Work shift activated", result)
}
