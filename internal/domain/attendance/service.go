package attendance

import (
	"context"
	"time"
)

// WeekService owns the Monday-start weekly attendance map.
type WeekService interface {
	// GetWeek restores the stored week for the week containing referenceDate,
	// initializing a fresh all-pending week when nothing usable is stored.
	GetWeek(ctx context.Context, referenceDate time.Time) (WeekResponse, error)

	// UpdateStatus replaces the status of one day. Days strictly after today
	// are rejected with ErrFutureDateEdit and nothing is written. Setting
	// leave or sick backfills a localized default reason when none exists.
	UpdateStatus(ctx context.Context, dateKey string, req UpdateStatusRequest) (WeekResponse, error)

	// GetDayDetail composes the human-readable summary for one day.
	GetDayDetail(ctx context.Context, dateKey string) (DayDetailResponse, error)
}
