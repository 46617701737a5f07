package attendance

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/attendance"
	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/settings"
	"github.com/workwhisperer/timekeeper-backend-go/internal/kvstore"
	"github.com/workwhisperer/timekeeper-backend-go/internal/pkg/clock"
)

type WeekServiceImpl struct {
	attendance.WeekRepository
	settingsService settings.PreferencesService
	clk             clock.Clock
}

func NewWeekService(
	weekRepo attendance.WeekRepository,
	settingsService settings.PreferencesService,
	clk clock.Clock,
) attendance.WeekService {
	return &WeekServiceImpl{
		WeekRepository:  weekRepo,
		settingsService: settingsService,
		clk:             clk,
	}
}

// InitializeWeek produces the 7-day Monday-start map for the week containing
// referenceDate, every day pending with no times or reason. Idempotent for
// any reference date within the same week.
func InitializeWeek(referenceDate time.Time) attendance.WeekMap {
	monday := attendance.MondayOf(referenceDate)
	week := make(attendance.WeekMap, 7)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		week[attendance.DateKey(day)] = attendance.DayRecord{
			Date:   day,
			Status: attendance.StatusPending,
		}
	}
	return week
}

// GetWeek implements attendance.WeekService.
func (s *WeekServiceImpl) GetWeek(ctx context.Context, referenceDate time.Time) (attendance.WeekResponse, error) {
	week, err := s.restoreOrInitialize(ctx, referenceDate)
	if err != nil {
		return attendance.WeekResponse{}, err
	}
	return s.toResponse(ctx, week, referenceDate), nil
}

// UpdateStatus implements attendance.WeekService.
func (s *WeekServiceImpl) UpdateStatus(ctx context.Context, dateKey string, req attendance.UpdateStatusRequest) (attendance.WeekResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.WeekResponse{}, err
	}

	date, err := time.Parse("2006-01-02", dateKey)
	if err != nil {
		return attendance.WeekResponse{}, attendance.ErrInvalidDateKey
	}

	today := s.clk.Now()
	if attendance.After(date, today) {
		// Future days are inert; nothing is written.
		return attendance.WeekResponse{}, attendance.ErrFutureDateEdit
	}

	week, err := s.restoreOrInitialize(ctx, date)
	if err != nil {
		return attendance.WeekResponse{}, err
	}

	newStatus := attendance.Status(req.Status)

	// Unknown keys start from an empty record rather than failing.
	record, ok := week[dateKey]
	if !ok {
		record = attendance.DayRecord{Date: attendance.TruncateToDay(date)}
	}
	record.Status = newStatus
	if req.Reason != nil {
		record.Reason = req.Reason
	}
	if (newStatus == attendance.StatusLeave || newStatus == attendance.StatusSick) && record.Reason == nil {
		reason := attendance.DefaultReason(newStatus, s.settingsService.Language(ctx))
		record.Reason = &reason
	}
	week[dateKey] = record

	if err := s.SaveWeek(ctx, week); err != nil {
		return attendance.WeekResponse{}, err
	}
	return s.toResponse(ctx, week, date), nil
}

// GetDayDetail implements attendance.WeekService.
func (s *WeekServiceImpl) GetDayDetail(ctx context.Context, dateKey string) (attendance.DayDetailResponse, error) {
	if _, err := time.Parse("2006-01-02", dateKey); err != nil {
		return attendance.DayDetailResponse{}, attendance.ErrInvalidDateKey
	}

	lang := s.settingsService.Language(ctx)

	week, err := s.LoadWeek(ctx)
	if err != nil {
		week = nil
	}

	resp := attendance.DayDetailResponse{Date: dateKey}
	if record, ok := week[dateKey]; ok {
		resp.Detail = attendance.DetailText(&record, lang)
		resp.Status = &record.Status
		resp.CheckIn = record.CheckIn
		resp.CheckOut = record.CheckOut
		resp.Reason = record.Reason
	} else {
		resp.Detail = attendance.DetailText(nil, lang)
	}
	return resp, nil
}

// restoreOrInitialize loads the stored map, replacing it with a fresh
// all-pending week when the blob is absent, malformed, or belongs to a
// different week than referenceDate. Persistence trouble never propagates a
// broken grid to the caller.
func (s *WeekServiceImpl) restoreOrInitialize(ctx context.Context, referenceDate time.Time) (attendance.WeekMap, error) {
	week, err := s.LoadWeek(ctx)
	if err == nil {
		if _, ok := week[attendance.DateKey(attendance.MondayOf(referenceDate))]; ok {
			return week, nil
		}
	} else if !errors.Is(err, kvstore.ErrKeyNotFound) {
		slog.Warn("discarding unreadable attendance data", "error", err)
	}

	week = InitializeWeek(referenceDate)
	if err := s.SaveWeek(ctx, week); err != nil {
		return nil, err
	}
	return week, nil
}

func (s *WeekServiceImpl) toResponse(ctx context.Context, week attendance.WeekMap, referenceDate time.Time) attendance.WeekResponse {
	lang := s.settingsService.Language(ctx)
	today := s.clk.Now()
	monday := attendance.MondayOf(referenceDate)

	resp := attendance.WeekResponse{
		WeekStart: attendance.DateKey(monday),
		Days:      make([]attendance.DayView, 0, 7),
	}

	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		key := attendance.DateKey(day)
		status := attendance.EffectiveStatus(week, day, today)
		future := attendance.After(day, today)

		view := attendance.DayView{
			Date:     key,
			Weekday:  attendance.WeekdayLabel(day, lang),
			Status:   status,
			Label:    attendance.Label(status, lang),
			Abbr:     attendance.Abbr(status),
			Emoji:    attendance.Emoji(status),
			IconKey:  attendance.IconKey(status),
			Color:    attendance.Color(status),
			IsToday:  attendance.SameDay(day, today),
			Editable: !future,
		}
		// Raw record fields surface only for non-future days; the stored
		// value for a future day stays hidden but untouched.
		if record, ok := week[key]; ok && !future {
			view.CheckIn = record.CheckIn
			view.CheckOut = record.CheckOut
			view.Reason = record.Reason
		}
		resp.Days = append(resp.Days, view)
	}

	return resp
}
