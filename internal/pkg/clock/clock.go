package clock

import "time"

// InvalidTime is recorded on a punch when the host clock cannot be read.
// Punching never fails; it degrades to this sentinel.
const InvalidTime = "--:--"

// Clock supplies wall-clock time to the services so tests can pin it.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns the real wall clock.
func System() Clock { return systemClock{} }

// Fixed returns a clock frozen at t.
func Fixed(t time.Time) Clock { return fixedClock{t: t} }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// FormatHM renders t as the HH:MM wall-clock string used on punch cards
// and day records. A zero time yields the InvalidTime sentinel.
func FormatHM(t time.Time) string {
	if t.IsZero() {
		return InvalidTime
	}
	return t.Format("15:04")
}
