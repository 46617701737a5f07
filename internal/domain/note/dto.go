package note

import (
	"time"

	"github.com/workwhisperer/timekeeper-backend-go/internal/pkg/clock"
	"github.com/workwhisperer/timekeeper-backend-go/internal/pkg/validator"
)

// SaveNoteRequest creates or replaces a note. The same form backs add and
// edit, matching the dialog it came from.
type SaveNoteRequest struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	ReminderTime string `json:"reminder_time"` // RFC3339
	WeekDays     []int  `json:"week_days,omitempty"`
	Important    bool   `json:"important"`
}

// Validate applies the note form rules. The reminder must parse and, when a
// clock is supplied, lie in the future.
func (r SaveNoteRequest) Validate(clk clock.Clock) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	} else if !validator.MaxLength(r.Title, MaxTitleLength) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title cannot exceed 100 characters"})
	}

	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{Field: "content", Message: "content is required"})
	} else if !validator.MaxLength(r.Content, MaxContentLength) {
		errs = append(errs, validator.ValidationError{Field: "content", Message: "content cannot exceed 300 characters"})
	}

	if validator.IsEmpty(r.ReminderTime) {
		errs = append(errs, validator.ValidationError{Field: "reminder_time", Message: "reminder time is required"})
	} else if reminder, ok := validator.IsValidDateTime(r.ReminderTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "reminder_time", Message: "reminder time must be an ISO8601 timestamp"})
	} else if clk != nil && !reminder.After(clk.Now()) {
		errs = append(errs, validator.ValidationError{Field: "reminder_time", Message: "reminder time must be in the future"})
	}

	for _, day := range r.WeekDays {
		if !validator.IsValidWeekday(day) {
			errs = append(errs, validator.ValidationError{Field: "week_days", Message: "weekdays must be between 1 (Monday) and 7 (Sunday)"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NoteResponse is the serialized note.
type NoteResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ReminderTime time.Time `json:"reminder_time"`
	WeekDays     []int     `json:"week_days,omitempty"`
	Important    bool      `json:"important"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListResponse carries the view-capped notes plus the size of the full
// stored collection.
type ListResponse struct {
	Notes []NoteResponse `json:"notes"`
	Total int            `json:"total"`
}

func ToResponse(n WorkNote) NoteResponse {
	return NoteResponse{
		ID:           n.ID,
		Title:        n.Title,
		Content:      n.Content,
		ReminderTime: n.ReminderTime,
		WeekDays:     n.WeekDays,
		Important:    n.Important,
		CreatedAt:    n.CreatedAt,
	}
}
