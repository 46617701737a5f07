package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/attendance"
	"github.com/workwhisperer/timekeeper-backend-go/internal/kvstore"
)

// KeyAttendanceData is the legacy blob key for the weekly map.
const KeyAttendanceData = "attendance_data"

// dayRecordJSON mirrors the blob layout the web client wrote: an array of
// day objects with the date as an ISO 8601 date-time string.
type dayRecordJSON struct {
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
	CheckIn  *string   `json:"checkIn,omitempty"`
	CheckOut *string   `json:"checkOut,omitempty"`
	Reason   *string   `json:"reason,omitempty"`
}

type weekRepository struct {
	store kvstore.Store
}

func NewWeekRepository(store kvstore.Store) attendance.WeekRepository {
	return &weekRepository{store: store}
}

// LoadWeek implements attendance.WeekRepository.
func (r *weekRepository) LoadWeek(ctx context.Context) (attendance.WeekMap, error) {
	blob, err := r.store.Load(ctx, KeyAttendanceData)
	if err != nil {
		return nil, err
	}

	var records []dayRecordJSON
	if err := json.Unmarshal(blob, &records); err != nil {
		return nil, fmt.Errorf("malformed %s blob: %w", KeyAttendanceData, err)
	}

	week := make(attendance.WeekMap, len(records))
	for _, rec := range records {
		week[attendance.DateKey(rec.Date)] = attendance.DayRecord{
			Date:     attendance.TruncateToDay(rec.Date),
			Status:   attendance.Status(rec.Status),
			CheckIn:  rec.CheckIn,
			CheckOut: rec.CheckOut,
			Reason:   rec.Reason,
		}
	}
	return week, nil
}

// SaveWeek implements attendance.WeekRepository.
func (r *weekRepository) SaveWeek(ctx context.Context, week attendance.WeekMap) error {
	records := make([]dayRecordJSON, 0, len(week))
	for _, rec := range week {
		records = append(records, dayRecordJSON{
			Date:     rec.Date,
			Status:   string(rec.Status),
			CheckIn:  rec.CheckIn,
			CheckOut: rec.CheckOut,
			Reason:   rec.Reason,
		})
	}
	// Stable blob order for the grid and for diffable storage.
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s blob: %w", KeyAttendanceData, err)
	}
	return r.store.Save(ctx, KeyAttendanceData, blob)
}
