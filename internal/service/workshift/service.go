package workshift

import (
	"context"

	"github.com/google/uuid"

	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/workshift"
)

type ShiftServiceImpl struct {
	workshift.ShiftRepository
}

func NewShiftService(shiftRepo workshift.ShiftRepository) workshift.ShiftService {
	return &ShiftServiceImpl{ShiftRepository: shiftRepo}
}

// List implements workshift.ShiftService.
func (s *ShiftServiceImpl) List(ctx context.Context) ([]workshift.ShiftResponse, error) {
	shifts, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]workshift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		resp = append(resp, workshift.ToResponse(sh))
	}
	return resp, nil
}

// Create implements workshift.ShiftService.
func (s *ShiftServiceImpl) Create(ctx context.Context, req workshift.SaveShiftRequest) (workshift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return workshift.ShiftResponse{}, err
	}

	shifts, err := s.LoadAll(ctx)
	if err != nil {
		return workshift.ShiftResponse{}, err
	}

	newShift := workshift.WorkShift{
		ID:                    uuid.NewString(),
		Name:                  req.Name,
		StartTime:             req.StartTime,
		EndTime:               req.EndTime,
		IsActive:              len(shifts) == 0,
		ReminderBeforeMinutes: req.ReminderBeforeMinutes,
		ReminderAfterMinutes:  req.ReminderAfterMinutes,
		ShowCheckInButton:     req.ShowCheckInButton,
	}

	shifts = append(shifts, newShift)
	if err := s.SaveAll(ctx, shifts); err != nil {
		return workshift.ShiftResponse{}, err
	}
	return workshift.ToResponse(newShift), nil
}

// Update implements workshift.ShiftService.
func (s *ShiftServiceImpl) Update(ctx context.Context, id string, req workshift.SaveShiftRequest) (workshift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return workshift.ShiftResponse{}, err
	}

	shifts, err := s.LoadAll(ctx)
	if err != nil {
		return workshift.ShiftResponse{}, err
	}

	for i := range shifts {
		if shifts[i].ID != id {
			continue
		}
		shifts[i].Name = req.Name
		shifts[i].StartTime = req.StartTime
		shifts[i].EndTime = req.EndTime
		shifts[i].ReminderBeforeMinutes = req.ReminderBeforeMinutes
		shifts[i].ReminderAfterMinutes = req.ReminderAfterMinutes
		shifts[i].ShowCheckInButton = req.ShowCheckInButton

		if err := s.SaveAll(ctx, shifts); err != nil {
			return workshift.ShiftResponse{}, err
		}
		return workshift.ToResponse(shifts[i]), nil
	}

	return workshift.ShiftResponse{}, workshift.ErrShiftNotFound
}

// Delete implements workshift.ShiftService.
func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	shifts, err := s.LoadAll(ctx)
	if err != nil {
		return err
	}

	wasActive := false
	kept := shifts[:0]
	for _, sh := range shifts {
		if sh.ID == id {
			wasActive = sh.IsActive
			continue
		}
		kept = append(kept, sh)
	}
	if len(kept) == len(shifts) {
		return workshift.ErrShiftNotFound
	}

	if wasActive && len(kept) > 0 {
		kept[0].IsActive = true
	}
	return s.SaveAll(ctx, kept)
}

// SetActive implements workshift.ShiftService.
func (s *ShiftServiceImpl) SetActive(ctx context.Context, id string) (workshift.ShiftResponse, error) {
	shifts, err := s.LoadAll(ctx)
	if err != nil {
		return workshift.ShiftResponse{}, err
	}

	var activated *workshift.WorkShift
	for i := range shifts {
		shifts[i].IsActive = shifts[i].ID == id
		if shifts[i].IsActive {
			activated = &shifts[i]
		}
	}
	if activated == nil {
		return workshift.ShiftResponse{}, workshift.ErrShiftNotFound
	}

	if err := s.SaveAll(ctx, shifts); err != nil {
		return workshift.ShiftResponse{}, err
	}
	return workshift.ToResponse(*activated), nil
}

// Active implements workshift.ShiftService.
func (s *ShiftServiceImpl) Active(ctx context.Context) (*workshift.ShiftResponse, error) {
	shifts, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, sh := range shifts {
		if sh.IsActive {
			resp := workshift.ToResponse(sh)
			return &resp, nil
		}
	}
	return nil, nil
}
