package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAfter_ComparesCalendarDays(t *testing.T) {
	hanoi := time.FixedZone("UTC+7", 7*60*60)

	// Date keys parse as UTC midnight; today comes from a local wall clock.
	parsedKey := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		today time.Time
		want  bool
	}{
		{
			name:  "same calendar day, early morning east of UTC",
			today: time.Date(2024, 3, 20, 1, 0, 0, 0, hanoi),
			want:  false,
		},
		{
			name:  "same calendar day in UTC",
			today: time.Date(2024, 3, 20, 23, 0, 0, 0, time.UTC),
			want:  false,
		},
		{
			name:  "key one day ahead of local today",
			today: time.Date(2024, 3, 19, 23, 59, 0, 0, hanoi),
			want:  true,
		},
		{
			name:  "key one day behind local today",
			today: time.Date(2024, 3, 21, 0, 1, 0, 0, hanoi),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, After(parsedKey, tt.today))
		})
	}
}

func TestEffectiveStatus_SameLocalDayNotFuture(t *testing.T) {
	hanoi := time.FixedZone("UTC+7", 7*60*60)
	day := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	today := time.Date(2024, 3, 20, 1, 0, 0, 0, hanoi)

	week := WeekMap{
		"2024-03-20": {Date: day, Status: StatusComplete},
	}

	assert.Equal(t, StatusComplete, EffectiveStatus(week, day, today))
}
