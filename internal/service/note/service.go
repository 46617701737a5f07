package note

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/note"
	"github.com/workwhisperer/timekeeper-backend-go/internal/pkg/clock"
)

type NoteServiceImpl struct {
	note.NoteRepository
	clk clock.Clock
}

func NewNoteService(noteRepo note.NoteRepository, clk clock.Clock) note.NoteService {
	return &NoteServiceImpl{NoteRepository: noteRepo, clk: clk}
}

// List implements note.NoteService.
func (s *NoteServiceImpl) List(ctx context.Context, all bool) (note.ListResponse, error) {
	notes, err := s.LoadAll(ctx)
	if err != nil {
		return note.ListResponse{}, err
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].ReminderTime.Before(notes[j].ReminderTime)
	})

	total := len(notes)
	if !all && len(notes) > note.ViewCap {
		notes = notes[:note.ViewCap]
	}

	resp := note.ListResponse{
		Notes: make([]note.NoteResponse, 0, len(notes)),
		Total: total,
	}
	for _, n := range notes {
		resp.Notes = append(resp.Notes, note.ToResponse(n))
	}
	return resp, nil
}

// Add implements note.NoteService.
func (s *NoteServiceImpl) Add(ctx context.Context, req note.SaveNoteRequest) (note.NoteResponse, error) {
	if err := req.Validate(s.clk); err != nil {
		return note.NoteResponse{}, err
	}

	notes, err := s.LoadAll(ctx)
	if err != nil {
		return note.NoteResponse{}, err
	}

	reminder, _ := time.Parse(time.RFC3339, req.ReminderTime)
	newNote := note.WorkNote{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Content:      req.Content,
		ReminderTime: reminder,
		WeekDays:     req.WeekDays,
		Important:    req.Important,
		CreatedAt:    s.clk.Now(),
	}

	notes = append(notes, newNote)
	if err := s.SaveAll(ctx, notes); err != nil {
		return note.NoteResponse{}, err
	}
	return note.ToResponse(newNote), nil
}

// Edit implements note.NoteService.
func (s *NoteServiceImpl) Edit(ctx context.Context, id string, req note.SaveNoteRequest) (note.NoteResponse, error) {
	if err := req.Validate(s.clk); err != nil {
		return note.NoteResponse{}, err
	}

	notes, err := s.LoadAll(ctx)
	if err != nil {
		return note.NoteResponse{}, err
	}

	reminder, _ := time.Parse(time.RFC3339, req.ReminderTime)
	for i, existing := range notes {
		if existing.ID != id {
			continue
		}
		notes[i].Title = req.Title
		notes[i].Content = req.Content
		notes[i].ReminderTime = reminder
		notes[i].WeekDays = req.WeekDays
		notes[i].Important = req.Important

		if err := s.SaveAll(ctx, notes); err != nil {
			return note.NoteResponse{}, err
		}
		return note.ToResponse(notes[i]), nil
	}

	return note.NoteResponse{}, note.ErrNoteNotFound
}

// Delete implements note.NoteService.
func (s *NoteServiceImpl) Delete(ctx context.Context, id string) error {
	notes, err := s.LoadAll(ctx)
	if err != nil {
		return err
	}

	kept := notes[:0]
	for _, existing := range notes {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(notes) {
		// Deleting an absent id is a no-op.
		return nil
	}

	return s.SaveAll(ctx, kept)
}
