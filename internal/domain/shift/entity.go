package shift

// State is the position in the daily punch cycle. Exactly one state is
// active at a time and the cycle never skips a step.
type State string

const (
	StateIdle        State = "idle"
	StateStartedWork State = "started_work"
	StateClockedIn   State = "clocked_in"
	StateClockedOut  State = "clocked_out"
)

// Action is the user-facing punch that advances the cycle.
type Action string

const (
	ActionGoToWork Action = "go_to_work"
	ActionClockIn  Action = "clock_in"
	ActionClockOut Action = "clock_out"
	ActionSignOff  Action = "sign_off"
)

// PunchCard is the daily punch-card record. Each timestamp is an HH:MM
// wall-clock string, populated if and only if the cycle has passed the
// corresponding transition since the last reset.
type PunchCard struct {
	State         State
	WorkStartTime *string
	CheckInTime   *string
	CheckOutTime  *string
}

// NewPunchCard returns a card at the start of the cycle.
func NewPunchCard() PunchCard {
	return PunchCard{State: StateIdle}
}

// NextAction returns the punch that applies from s. The cycle is linear:
// idle → started_work → clocked_in → clocked_out → idle.
func NextAction(s State) Action {
	switch s {
	case StateIdle:
		return ActionGoToWork
	case StateStartedWork:
		return ActionClockIn
	case StateClockedIn:
		return ActionClockOut
	default:
		return ActionSignOff
	}
}

// ActionLabel returns the localized button label for a.
func ActionLabel(a Action, lang string) string {
	vi := lang == "vi"
	switch a {
	case ActionGoToWork:
		if vi {
			return "Đi làm"
		}
		return "Go to work"
	case ActionClockIn:
		if vi {
			return "Chấm công vào"
		}
		return "Clock in"
	case ActionClockOut:
		if vi {
			return "Chấm công ra"
		}
		return "Clock out"
	default:
		if vi {
			return "Kết thúc ca"
		}
		return "Sign off"
	}
}
