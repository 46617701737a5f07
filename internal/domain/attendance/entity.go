package attendance

import (
	"time"
)

// Status is the canonical day-level attendance category.
type Status string

const (
	StatusWarning  Status = "warning"  // worked but time records incomplete
	StatusComplete Status = "complete" // full attendance
	StatusPending  Status = "pending"  // not updated yet
	StatusLeave    Status = "leave"    // annual leave
	StatusSick     Status = "sick"     // sick leave
	StatusHoliday  Status = "holiday"  // public holiday
	StatusAbsent   Status = "absent"   // absent without reason
	StatusLate     Status = "late"     // late arrival or early leave
)

// AllStatuses lists every status in display order.
var AllStatuses = []Status{
	StatusWarning,
	StatusComplete,
	StatusPending,
	StatusLeave,
	StatusSick,
	StatusHoliday,
	StatusAbsent,
	StatusLate,
}

// IsValid reports whether s is one of the eight canonical statuses.
func (s Status) IsValid() bool {
	for _, status := range AllStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// DayRecord is the stored attendance record for one calendar day.
// CheckIn/CheckOut are free-form HH:MM strings; they are independent of the
// punch card and never reconciled with it.
type DayRecord struct {
	Date     time.Time
	Status   Status
	CheckIn  *string
	CheckOut *string
	Reason   *string
}

// WeekMap maps a yyyy-MM-dd date key to that day's record.
type WeekMap map[string]DayRecord

// DateKey renders t as the map key for its calendar day.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// TruncateToDay strips the time-of-day portion, keeping the location.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MondayOf returns the Monday of the ISO week containing t, at day
// granularity.
func MondayOf(t time.Time) time.Time {
	day := TruncateToDay(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return day.AddDate(0, 0, -offset)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// After reports whether date is strictly after today at day granularity.
// Calendar dates are compared, not instants: each side renders in its own
// location, so a UTC-parsed date key and a local wall clock agree on what
// "today" is.
func After(date, today time.Time) bool {
	return DateKey(date) > DateKey(today)
}

// EffectiveStatus is the display-time status rule: a day strictly in the
// future always shows pending no matter what is stored; today and past days
// show the stored status, defaulting to pending. The stored record is never
// touched by reading it.
func EffectiveStatus(m WeekMap, date, today time.Time) Status {
	if After(date, today) {
		return StatusPending
	}
	if rec, ok := m[DateKey(date)]; ok && rec.Status.IsValid() {
		return rec.Status
	}
	return StatusPending
}
