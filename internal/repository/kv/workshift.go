package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/workshift"
	"github.com/workwhisperer/timekeeper-backend-go/internal/kvstore"
)

// KeyWorkShifts is the blob key for the shift presets.
const KeyWorkShifts = "work_shifts"

type workShiftJSON struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	IsActive          bool   `json:"isActive"`
	ReminderBefore    int    `json:"reminderBefore"`
	ReminderAfter     int    `json:"reminderAfter"`
	ShowCheckInButton bool   `json:"showCheckInButton"`
}

type shiftRepository struct {
	store kvstore.Store
}

func NewShiftRepository(store kvstore.Store) workshift.ShiftRepository {
	return &shiftRepository{store: store}
}

// LoadAll implements workshift.ShiftRepository.
func (r *shiftRepository) LoadAll(ctx context.Context) ([]workshift.WorkShift, error) {
	blob, err := r.store.Load(ctx, KeyWorkShifts)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return []workshift.WorkShift{}, nil
		}
		return nil, err
	}

	var records []workShiftJSON
	if err := json.Unmarshal(blob, &records); err != nil {
		return nil, fmt.Errorf("malformed %s blob: %w", KeyWorkShifts, err)
	}

	shifts := make([]workshift.WorkShift, 0, len(records))
	for _, rec := range records {
		shifts = append(shifts, workshift.WorkShift{
			ID:                    rec.ID,
			Name:                  rec.Name,
			StartTime:             rec.StartTime,
			EndTime:               rec.EndTime,
			IsActive:              rec.IsActive,
			ReminderBeforeMinutes: rec.ReminderBefore,
			ReminderAfterMinutes:  rec.ReminderAfter,
			ShowCheckInButton:     rec.ShowCheckInButton,
		})
	}
	return shifts, nil
}

// SaveAll implements workshift.ShiftRepository.
func (r *shiftRepository) SaveAll(ctx context.Context, shifts []workshift.WorkShift) error {
	records := make([]workShiftJSON, 0, len(shifts))
	for _, s := range shifts {
		records = append(records, workShiftJSON{
			ID:                s.ID,
			Name:              s.Name,
			StartTime:         s.StartTime,
			EndTime:           s.EndTime,
			IsActive:          s.IsActive,
			ReminderBefore:    s.ReminderBeforeMinutes,
			ReminderAfter:     s.ReminderAfterMinutes,
			ShowCheckInButton: s.ShowCheckInButton,
		})
	}

	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s blob: %w", KeyWorkShifts, err)
	}
	return r.store.Save(ctx, KeyWorkShifts, blob)
}
