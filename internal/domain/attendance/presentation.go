package attendance

import (
	"strings"
	"time"
)

// StatusText carries the localized labels and the compact grid tokens for
// one status. Presentation only: always derived from the enum, never parsed
// back.
type StatusText struct {
	En    string
	Vi    string
	Emoji string
	Abbr  string
}

var statusTexts = map[Status]StatusText{
	StatusWarning:  {En: "Missing Time Records", Vi: "Thiếu chấm công", Emoji: "❗", Abbr: "!"},
	StatusComplete: {En: "Complete", Vi: "Đủ công", Emoji: "✅", Abbr: "✓"},
	StatusPending:  {En: "Not Updated", Vi: "Chưa cập nhật", Emoji: "❓", Abbr: "--"},
	StatusLeave:    {En: "On Leave", Vi: "Nghỉ phép", Emoji: "📩", Abbr: "P"},
	StatusSick:     {En: "Sick Leave", Vi: "Nghỉ bệnh", Emoji: "🛌", Abbr: "B"},
	StatusHoliday:  {En: "Holiday", Vi: "Nghỉ lễ", Emoji: "🎌", Abbr: "H"},
	StatusAbsent:   {En: "Absent", Vi: "Vắng không lý do", Emoji: "❌", Abbr: "X"},
	StatusLate:     {En: "Late or Early Leave", Vi: "Vào muộn hoặc ra sớm", Emoji: "🕒", Abbr: "RV"},
}

var statusColors = map[Status]string{
	StatusWarning:  "#ff9800",
	StatusComplete: "#4caf50",
	StatusPending:  "#9e9e9e",
	StatusLeave:    "#2196f3",
	StatusSick:     "#f44336",
	StatusHoliday:  "#9c27b0",
	StatusAbsent:   "#d32f2f",
	StatusLate:     "#ff5722",
}

var statusIcons = map[Status]string{
	StatusWarning:  "alert-circle",
	StatusComplete: "check-circle",
	StatusPending:  "help-circle",
	StatusLeave:    "file-text",
	StatusSick:     "bed",
	StatusHoliday:  "flag",
	StatusAbsent:   "x-circle",
	StatusLate:     "clock",
}

var weekdayVi = map[string]string{
	"Mon": "T2",
	"Tue": "T3",
	"Wed": "T4",
	"Thu": "T5",
	"Fri": "T6",
	"Sat": "T7",
	"Sun": "CN",
}

// Label returns the localized status label.
func Label(s Status, lang string) string {
	text, ok := statusTexts[s]
	if !ok {
		text = statusTexts[StatusPending]
	}
	if lang == "vi" {
		return text.Vi
	}
	return text.En
}

// Abbr returns the 1-2 character grid token for s.
func Abbr(s Status) string {
	if text, ok := statusTexts[s]; ok {
		return text.Abbr
	}
	return statusTexts[StatusPending].Abbr
}

// Emoji returns the emoji glyph for s.
func Emoji(s Status) string {
	if text, ok := statusTexts[s]; ok {
		return text.Emoji
	}
	return statusTexts[StatusPending].Emoji
}

// Color returns the hex color bucket for s.
func Color(s Status) string {
	if color, ok := statusColors[s]; ok {
		return color
	}
	return statusColors[StatusPending]
}

// IconKey returns the icon identifier for s.
func IconKey(s Status) string {
	if icon, ok := statusIcons[s]; ok {
		return icon
	}
	return statusIcons[StatusPending]
}

// WeekdayLabel returns the localized short weekday name for a date.
func WeekdayLabel(date time.Time, lang string) string {
	en := date.Format("Mon")
	if lang == "vi" {
		return weekdayVi[en]
	}
	return en
}

// DefaultReason returns the localized reason backfilled when a day is set to
// leave or sick without an explicit reason. Empty for any other status.
func DefaultReason(s Status, lang string) string {
	switch s {
	case StatusLeave:
		if lang == "vi" {
			return "Nghỉ phép"
		}
		return "Annual Leave"
	case StatusSick:
		if lang == "vi" {
			return "Nghỉ ốm"
		}
		return "Sick Leave"
	}
	return ""
}

// DetailText composes the multi-line, human-readable summary shown for a
// day: status label, optional check-in/out lines, optional reason line.
// A nil record yields the localized no-data sentinel.
func DetailText(record *DayRecord, lang string) string {
	if record == nil {
		if lang == "vi" {
			return "Chưa có dữ liệu"
		}
		return "No data available"
	}

	var sb strings.Builder
	sb.WriteString(Label(record.Status, lang))

	if record.CheckIn != nil {
		sb.WriteString("\n")
		if lang == "vi" {
			sb.WriteString("Giờ vào: ")
		} else {
			sb.WriteString("Check-in: ")
		}
		sb.WriteString(*record.CheckIn)
	}
	if record.CheckOut != nil {
		sb.WriteString("\n")
		if lang == "vi" {
			sb.WriteString("Giờ ra: ")
		} else {
			sb.WriteString("Check-out: ")
		}
		sb.WriteString(*record.CheckOut)
	}
	if record.Reason != nil {
		sb.WriteString("\n")
		if lang == "vi" {
			sb.WriteString("Lý do: ")
		} else {
			sb.WriteString("Reason: ")
		}
		sb.WriteString(*record.Reason)
	}

	return sb.String()
}
