package attendance

import (
	"github.com/workwhisperer/timekeeper-backend-go/internal/pkg/validator"
)

// UpdateStatusRequest sets a new status on one day of the week.
type UpdateStatusRequest struct {
	Status string  `json:"status"`
	Reason *string `json:"reason,omitempty"`
}

func (r UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status is required"})
	} else if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "unknown attendance status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DayView is the derived, display-ready projection of one grid cell.
type DayView struct {
	Date     string  `json:"date"`
	Weekday  string  `json:"weekday"`
	Status   Status  `json:"status"`
	Label    string  `json:"label"`
	Abbr     string  `json:"abbr"`
	Emoji    string  `json:"emoji"`
	IconKey  string  `json:"icon"`
	Color    string  `json:"color"`
	IsToday  bool    `json:"is_today"`
	Editable bool    `json:"editable"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	Reason   *string `json:"reason,omitempty"`
}

// WeekResponse is the seven-day grid, Monday first.
type WeekResponse struct {
	WeekStart string    `json:"week_start"`
	Days      []DayView `json:"days"`
}

// DayDetailResponse is the per-day drill-down.
type DayDetailResponse struct {
	Date   string `json:"date"`
	Detail string `json:"detail"`

	Status   *Status `json:"status,omitempty"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	Reason   *string `json:"reason,omitempty"`
}
