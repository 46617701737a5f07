package workshift

import (
	"github.com/workwhisperer/timekeeper-backend-go/internal/pkg/validator"
)

// SaveShiftRequest creates or replaces a preset.
type SaveShiftRequest struct {
	Name                  string `json:"name"`
	StartTime             string `json:"start_time"`
	EndTime               string `json:"end_time"`
	ReminderBeforeMinutes int    `json:"reminder_before_minutes"`
	ReminderAfterMinutes  int    `json:"reminder_after_minutes"`
	ShowCheckInButton     bool   `json:"show_check_in_button"`
}

func (r SaveShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start time must be HH:MM"})
	}
	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end time must be HH:MM"})
	}
	if r.ReminderBeforeMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "reminder_before_minutes", Message: "must not be negative"})
	}
	if r.ReminderAfterMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "reminder_after_minutes", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ShiftResponse is the serialized preset.
type ShiftResponse struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	StartTime             string `json:"start_time"`
	EndTime               string `json:"end_time"`
	IsActive              bool   `json:"is_active"`
	ReminderBeforeMinutes int    `json:"reminder_before_minutes"`
	ReminderAfterMinutes  int    `json:"reminder_after_minutes"`
	ShowCheckInButton     bool   `json:"show_check_in_button"`
}

func ToResponse(s WorkShift) ShiftResponse {
	return ShiftResponse{
		ID:                    s.ID,
		Name:                  s.Name,
		StartTime:             s.StartTime,
		EndTime:               s.EndTime,
		IsActive:              s.IsActive,
		ReminderBeforeMinutes: s.ReminderBeforeMinutes,
		ReminderAfterMinutes:  s.ReminderAfterMinutes,
		ShowCheckInButton:     s.ShowCheckInButton,
	}
}
