package note

import "time"

const (
	MaxTitleLength   = 100
	MaxContentLength = 300

	// ViewCap is the number of soonest-reminder notes the dashboard shows.
	// A view concern only: the stored collection is never truncated.
	ViewCap = 3
)

// WorkNote is a short reminder note owned by the tracker's single user.
type WorkNote struct {
	ID           string
	Title        string
	Content      string
	ReminderTime time.Time
	WeekDays     []int // 1=Monday .. 7=Sunday
	Important    bool
	CreatedAt    time.Time
}
