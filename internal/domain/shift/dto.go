package shift

// ConfirmRequest gates a punch or a reset. The mutation runs only when
// Confirm is true; anything else is a preview and leaves the card untouched.
type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}

// CardResponse reports the card, whether the request mutated it, and the
// action the next confirmed advance would run.
type CardResponse struct {
	State         State   `json:"state"`
	WorkStartTime *string `json:"work_start_time,omitempty"`
	CheckInTime   *string `json:"check_in_time,omitempty"`
	CheckOutTime  *string `json:"check_out_time,omitempty"`
	Applied       bool    `json:"applied"`
	NextAction    Action  `json:"next_action"`
	NextLabel     string  `json:"next_label"`

	ActiveShift *ActiveShift `json:"active_shift,omitempty"`
}

// ActiveShift is the dashboard header summary of the active work-shift
// preset.
type ActiveShift struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
