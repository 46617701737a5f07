package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/attendance"
	"github.com/workwhisperer/timekeeper-backend-go/internal/handler/http/response"
	"github.com/workwhisperer/timekeeper-backend-go/internal/pkg/clock"
)

type AttendanceHandler interface {
	GetWeek(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	GetDayDetail(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	weekService attendance.WeekService
	clk         clock.Clock
}

func NewAttendanceHandler(weekService attendance.WeekService, clk clock.Clock) AttendanceHandler {
	return &attendanceHandlerImpl{weekService: weekService, clk: clk}
}

// GetWeek implements AttendanceHandler. The optional date query parameter
// picks the reference day; it defaults to now.
func (h *attendanceHandlerImpl) GetWeek(w http.ResponseWriter, r *http.Request) {
	referenceDate := h.clk.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "Date must be yyyy-MM-dd", nil)
			return
		}
		referenceDate = parsed
	}

	result, err := h.weekService.GetWeek(r.Context(), referenceDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// UpdateStatus implements AttendanceHandler.
func (h *attendanceHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode status update", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	dateKey := chi.URLParam(r, "date")
	result, err := h.weekService.UpdateStatus(r.Context(), dateKey, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Status updated", result)
}

// GetDayDetail implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetDayDetail(w http.ResponseWriter, r *http.Request) {
	dateKey := chi.URLParam(r, "date")
	result, err := h.weekService.GetDayDetail(r.Context(), dateKey)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
