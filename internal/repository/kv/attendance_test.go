package kv

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/attendance"
	"github.com/workwhisperer/timekeeper-backend-go/internal/kvstore"
	"github.com/workwhisperer/timekeeper-backend-go/internal/kvstore/memory"
)

func TestWeekRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := NewWeekRepository(store)

	checkIn := "08:05"
	reason := "Nghỉ ốm"
	week := attendance.WeekMap{
		"2024-03-18": {
			Date:    time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC),
			Status:  attendance.StatusComplete,
			CheckIn: &checkIn,
		},
		"2024-03-19": {
			Date:   time.Date(2024, 3, 19, 0, 0, 0, 0, time.UTC),
			Status: attendance.StatusSick,
			Reason: &reason,
		},
	}
	require.NoError(t, repo.SaveWeek(ctx, week))

	loaded, err := repo.LoadWeek(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	monday := loaded["2024-03-18"]
	assert.Equal(t, attendance.StatusComplete, monday.Status)
	require.NotNil(t, monday.CheckIn)
	assert.Equal(t, "08:05", *monday.CheckIn)
	assert.Nil(t, monday.Reason)

	tuesday := loaded["2024-03-19"]
	assert.Equal(t, attendance.StatusSick, tuesday.Status)
	require.NotNil(t, tuesday.Reason)
	assert.Equal(t, "Nghỉ ốm", *tuesday.Reason)
}

func TestWeekRepository_BlobLayout(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := NewWeekRepository(store)

	week := attendance.WeekMap{
		"2024-03-19": {Date: time.Date(2024, 3, 19, 0, 0, 0, 0, time.UTC), Status: attendance.StatusPending},
		"2024-03-18": {Date: time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), Status: attendance.StatusComplete},
	}
	require.NoError(t, repo.SaveWeek(ctx, week))

	blob, err := store.Load(ctx, KeyAttendanceData)
	require.NoError(t, err)

	// The blob is a date-sorted array with the client's camelCase fields
	var raw []map[string]interface{}
	require.NoError(t, json.Unmarshal(blob, &raw))
	require.Len(t, raw, 2)
	assert.Equal(t, "complete", raw[0]["status"])
	assert.Equal(t, "pending", raw[1]["status"])
	assert.Contains(t, raw[0], "date")
	assert.NotContains(t, raw[0], "check_in")
}

func TestWeekRepository_LoadWeek_MissingKey(t *testing.T) {
	ctx := context.Background()
	repo := NewWeekRepository(memory.NewStore())

	_, err := repo.LoadWeek(ctx)
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
}

func TestWeekRepository_LoadWeek_MalformedBlob(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := NewWeekRepository(store)

	require.NoError(t, store.Save(ctx, KeyAttendanceData, []byte(`{"not":"an array"}`)))

	_, err := repo.LoadWeek(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, kvstore.ErrKeyNotFound)
}
