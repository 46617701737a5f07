package workshift

// WorkShift is a named shift preset (e.g. "Ca Ngày" 08:00→20:00). Exactly
// one preset is active at a time; the active one feeds the dashboard header
// and the punch-reminder settings.
type WorkShift struct {
	ID                    string
	Name                  string
	StartTime             string // HH:MM
	EndTime               string // HH:MM
	IsActive              bool
	ReminderBeforeMinutes int
	ReminderAfterMinutes  int
	ShowCheckInButton     bool
}
