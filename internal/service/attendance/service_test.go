package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/attendance"
	"github.com/workwhisperer/timekeeper-backend-go/internal/kvstore"
	"github.com/workwhisperer/timekeeper-backend-go/internal/kvstore/memory"
	"github.com/workwhisperer/timekeeper-backend-go/internal/pkg/clock"
	"github.com/workwhisperer/timekeeper-backend-go/internal/pkg/validator"
	"github.com/workwhisperer/timekeeper-backend-go/internal/repository/kv"
	settingsService "github.com/workwhisperer/timekeeper-backend-go/internal/service/settings"
)

// Wednesday, mid-week
var testToday = time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)

func newTestWeekService(clk clock.Clock) (attendance.WeekService, kvstore.Store) {
	store := memory.NewStore()
	prefsSvc := settingsService.NewPreferencesService(kv.NewPreferencesRepository(store), "vi")
	weekSvc := NewWeekService(kv.NewWeekRepository(store), prefsSvc, clk)
	return weekSvc, store
}

func TestInitializeWeek(t *testing.T) {
	week := InitializeWeek(testToday)

	require.Len(t, week, 7)
	for i := 0; i < 7; i++ {
		key := time.Date(2024, 3, 18+i, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		record, ok := week[key]
		require.True(t, ok, "missing day %s", key)
		assert.Equal(t, attendance.StatusPending, record.Status)
		assert.Nil(t, record.CheckIn)
		assert.Nil(t, record.CheckOut)
		assert.Nil(t, record.Reason)
	}
}

func TestInitializeWeek_AnyReferenceDayInWeek(t *testing.T) {
	monday := InitializeWeek(time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC))
	sunday := InitializeWeek(time.Date(2024, 3, 24, 23, 59, 0, 0, time.UTC))

	assert.Equal(t, monday, sunday)
}

func TestWeekService_GetWeek_InitializesFreshWeek(t *testing.T) {
	ctx := context.Background()
	weekSvc, _ := newTestWeekService(clock.Fixed(testToday))

	week, err := weekSvc.GetWeek(ctx, testToday)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-18", week.WeekStart)
	require.Len(t, week.Days, 7)
	for i, day := range week.Days {
		assert.Equal(t, attendance.StatusPending, day.Status)
		assert.Equal(t, i == 2, day.IsToday, "day %s", day.Date)
		assert.Equal(t, i <= 2, day.Editable, "day %s", day.Date)
	}
	assert.Equal(t, "T2", week.Days[0].Weekday)
	assert.Equal(t, "CN", week.Days[6].Weekday)
}

func TestWeekService_GetWeek_ReinitializesOtherWeek(t *testing.T) {
	ctx := context.Background()
	weekSvc, store := newTestWeekService(clock.Fixed(testToday))

	// Store last week's map, then ask for the current week
	lastWeek := InitializeWeek(testToday.AddDate(0, 0, -7))
	err := kv.NewWeekRepository(store).SaveWeek(ctx, lastWeek)
	require.NoError(t, err)

	week, err := weekSvc.GetWeek(ctx, testToday)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-18", week.WeekStart)
	for _, day := range week.Days {
		assert.Equal(t, attendance.StatusPending, day.Status)
	}
}

func TestWeekService_GetWeek_DiscardsMalformedBlob(t *testing.T) {
	ctx := context.Background()
	weekSvc, store := newTestWeekService(clock.Fixed(testToday))

	err := store.Save(ctx, kv.KeyAttendanceData, []byte("{"))
	require.NoError(t, err)

	week, err := weekSvc.GetWeek(ctx, testToday)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-18", week.WeekStart)
	require.Len(t, week.Days, 7)
}

func TestWeekService_UpdateStatus_BackfillsSickReason(t *testing.T) {
	ctx := context.Background()
	weekSvc, _ := newTestWeekService(clock.Fixed(testToday))

	week, err := weekSvc.UpdateStatus(ctx, "2024-03-19", attendance.UpdateStatusRequest{Status: "sick"})
	require.NoError(t, err)

	tuesday := week.Days[1]
	assert.Equal(t, attendance.StatusSick, tuesday.Status)
	require.NotNil(t, tuesday.Reason)
	assert.Equal(t, "Nghỉ ốm", *tuesday.Reason)
}

func TestWeekService_UpdateStatus_KeepsExplicitReason(t *testing.T) {
	ctx := context.Background()
	weekSvc, _ := newTestWeekService(clock.Fixed(testToday))

	reason := "Về quê"
	week, err := weekSvc.UpdateStatus(ctx, "2024-03-19", attendance.UpdateStatusRequest{
		Status: "leave",
		Reason: &reason,
	})
	require.NoError(t, err)

	tuesday := week.Days[1]
	assert.Equal(t, attendance.StatusLeave, tuesday.Status)
	require.NotNil(t, tuesday.Reason)
	assert.Equal(t, "Về quê", *tuesday.Reason)
}

func TestWeekService_UpdateStatus_FutureDayRejected(t *testing.T) {
	ctx := context.Background()
	weekSvc, _ := newTestWeekService(clock.Fixed(testToday))

	_, err := weekSvc.UpdateStatus(ctx, "2024-03-22", attendance.UpdateStatusRequest{Status: "complete"})
	assert.ErrorIs(t, err, attendance.ErrFutureDateEdit)

	// Nothing was written
	week, err := weekSvc.GetWeek(ctx, testToday)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPending, week.Days[4].Status)
}

func TestWeekService_UpdateStatus_TodayEarlyMorningEastOfUTC(t *testing.T) {
	ctx := context.Background()
	hanoi := time.FixedZone("UTC+7", 7*60*60)

	// 01:00 local is still 2024-03-19 in UTC; today's key must stay editable.
	weekSvc, _ := newTestWeekService(clock.Fixed(time.Date(2024, 3, 20, 1, 0, 0, 0, hanoi)))

	week, err := weekSvc.UpdateStatus(ctx, "2024-03-20", attendance.UpdateStatusRequest{Status: "complete"})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusComplete, week.Days[2].Status)
	assert.True(t, week.Days[2].IsToday)
	assert.True(t, week.Days[2].Editable)
}

func TestWeekService_UpdateStatus_UnknownStatus(t *testing.T) {
	ctx := context.Background()
	weekSvc, _ := newTestWeekService(clock.Fixed(testToday))

	_, err := weekSvc.UpdateStatus(ctx, "2024-03-19", attendance.UpdateStatusRequest{Status: "vacationing"})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestWeekService_UpdateStatus_BadDateKey(t *testing.T) {
	ctx := context.Background()
	weekSvc, _ := newTestWeekService(clock.Fixed(testToday))

	_, err := weekSvc.UpdateStatus(ctx, "19-03-2024", attendance.UpdateStatusRequest{Status: "complete"})
	assert.ErrorIs(t, err, attendance.ErrInvalidDateKey)
}

func TestWeekService_FutureStatusDisplaysPending(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	prefsSvc := settingsService.NewPreferencesService(kv.NewPreferencesRepository(store), "vi")
	weekRepo := kv.NewWeekRepository(store)

	// Friday carries a stored status while the clock still says Wednesday
	week := InitializeWeek(testToday)
	friday := week["2024-03-22"]
	friday.Status = attendance.StatusComplete
	week["2024-03-22"] = friday
	require.NoError(t, weekRepo.SaveWeek(ctx, week))

	wednesdaySvc := NewWeekService(weekRepo, prefsSvc, clock.Fixed(testToday))
	resp, err := wednesdaySvc.GetWeek(ctx, testToday)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPending, resp.Days[4].Status)

	// Once the clock passes Friday the stored status surfaces unchanged
	saturday := time.Date(2024, 3, 23, 10, 0, 0, 0, time.UTC)
	saturdaySvc := NewWeekService(weekRepo, prefsSvc, clock.Fixed(saturday))
	resp, err = saturdaySvc.GetWeek(ctx, testToday)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusComplete, resp.Days[4].Status)
}

func TestWeekService_GetDayDetail(t *testing.T) {
	ctx := context.Background()
	weekSvc, _ := newTestWeekService(clock.Fixed(testToday))

	// No stored data at all
	detail, err := weekSvc.GetDayDetail(ctx, "2024-03-19")
	require.NoError(t, err)
	assert.Equal(t, "Chưa có dữ liệu", detail.Detail)
	assert.Nil(t, detail.Status)

	_, err = weekSvc.UpdateStatus(ctx, "2024-03-19", attendance.UpdateStatusRequest{Status: "sick"})
	require.NoError(t, err)

	detail, err = weekSvc.GetDayDetail(ctx, "2024-03-19")
	require.NoError(t, err)
	require.NotNil(t, detail.Status)
	assert.Equal(t, attendance.StatusSick, *detail.Status)
	assert.Contains(t, detail.Detail, "Nghỉ bệnh")
	assert.Contains(t, detail.Detail, "Lý do: Nghỉ ốm")
}

func TestWeekService_GetDayDetail_BadDateKey(t *testing.T) {
	ctx := context.Background()
	weekSvc, _ := newTestWeekService(clock.Fixed(testToday))

	_, err := weekSvc.GetDayDetail(ctx, "tomorrow")
	assert.ErrorIs(t, err, attendance.ErrInvalidDateKey)
}
