package attendance

import "context"

// WeekRepository persists the weekly map as a single blob under the
// attendance_data key.
type WeekRepository interface {
	// LoadWeek restores the stored map. Returns kvstore.ErrKeyNotFound when
	// nothing has been saved yet.
	LoadWeek(ctx context.Context) (WeekMap, error)

	// SaveWeek overwrites the stored map.
	SaveWeek(ctx context.Context, week WeekMap) error
}
