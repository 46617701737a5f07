package response

import (
	"errors"
	"net/http"

	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/attendance"
	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/auth"
	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/note"
	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/workshift"
	"github.com/workwhisperer/timekeeper-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidPIN):
		Unauthorized(w, "Invalid access PIN")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrAuthDisabled):
		Conflict(w, "Authentication is not configured")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidDateKey):
		BadRequest(w, "Date must be yyyy-MM-dd", nil)
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Unknown attendance status", nil)
	case errors.Is(err, attendance.ErrFutureDateEdit):
		Conflict(w, "Cannot edit a day in the future")

	// Note domain errors
	case errors.Is(err, note.ErrNoteNotFound):
		NotFound(w, "Note not found")

	// Work-shift domain errors
	case errors.Is(err, workshift.ErrShiftNotFound):
		NotFound(w, "Work shift not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
