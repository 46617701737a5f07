package shift

import (
	"context"
	"errors"
	"log/slog"

	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/settings"
	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/shift"
	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/workshift"
	"github.com/workwhisperer/timekeeper-backend-go/internal/kvstore"
	"github.com/workwhisperer/timekeeper-backend-go/internal/pkg/clock"
)

type CardServiceImpl struct {
	shift.CardRepository
	shiftService    workshift.ShiftService
	settingsService settings.PreferencesService
	clk             clock.Clock
}

func NewCardService(
	cardRepo shift.CardRepository,
	shiftService workshift.ShiftService,
	settingsService settings.PreferencesService,
	clk clock.Clock,
) shift.CardService {
	return &CardServiceImpl{
		CardRepository:  cardRepo,
		shiftService:    shiftService,
		settingsService: settingsService,
		clk:             clk,
	}
}

// GetCard implements shift.CardService.
func (s *CardServiceImpl) GetCard(ctx context.Context) (shift.CardResponse, error) {
	card := s.loadCard(ctx)
	return s.toResponse(ctx, card, false), nil
}

// Advance implements shift.CardService.
func (s *CardServiceImpl) Advance(ctx context.Context, req shift.ConfirmRequest) (shift.CardResponse, error) {
	card := s.loadCard(ctx)

	if !req.Confirm {
		// Declined or previewed: no observable side effect.
		return s.toResponse(ctx, card, false), nil
	}

	now := clock.FormatHM(s.clk.Now())

	switch card.State {
	case shift.StateIdle:
		card.WorkStartTime = &now
		card.State = shift.StateStartedWork
	case shift.StateStartedWork:
		card.CheckInTime = &now
		card.State = shift.StateClockedIn
	case shift.StateClockedIn:
		card.CheckOutTime = &now
		card.State = shift.StateClockedOut
	case shift.StateClockedOut:
		// Sign off closes the cycle: all three timestamps clear together.
		card = shift.NewPunchCard()
	}

	if err := s.SaveCard(ctx, card); err != nil {
		return shift.CardResponse{}, err
	}
	return s.toResponse(ctx, card, true), nil
}

// Reset implements shift.CardService.
func (s *CardServiceImpl) Reset(ctx context.Context, req shift.ConfirmRequest) (shift.CardResponse, error) {
	card := s.loadCard(ctx)

	if !req.Confirm || card.State == shift.StateIdle {
		return s.toResponse(ctx, card, false), nil
	}

	card = shift.NewPunchCard()
	if err := s.SaveCard(ctx, card); err != nil {
		return shift.CardResponse{}, err
	}
	return s.toResponse(ctx, card, true), nil
}

// loadCard restores the persisted card, starting a fresh cycle when nothing
// usable is stored. Punching is best-effort: a broken blob must not take the
// punch buttons down.
func (s *CardServiceImpl) loadCard(ctx context.Context) shift.PunchCard {
	card, err := s.LoadCard(ctx)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			slog.Warn("discarding unreadable punch card", "error", err)
		}
		return shift.NewPunchCard()
	}
	switch card.State {
	case shift.StateIdle, shift.StateStartedWork, shift.StateClockedIn, shift.StateClockedOut:
		return card
	default:
		return shift.NewPunchCard()
	}
}

func (s *CardServiceImpl) toResponse(ctx context.Context, card shift.PunchCard, applied bool) shift.CardResponse {
	lang := s.settingsService.Language(ctx)
	next := shift.NextAction(card.State)

	resp := shift.CardResponse{
		State:         card.State,
		WorkStartTime: card.WorkStartTime,
		CheckInTime:   card.CheckInTime,
		CheckOutTime:  card.CheckOutTime,
		Applied:       applied,
		NextAction:    next,
		NextLabel:     shift.ActionLabel(next, lang),
	}

	if active, err := s.shiftService.Active(ctx); err == nil && active != nil {
		resp.ActiveShift = &shift.ActiveShift{
			Name:      active.Name,
			StartTime: active.StartTime,
			EndTime:   active.EndTime,
		}
	}

	return resp
}
