package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/note"
	"github.com/workwhisperer/timekeeper-backend-go/internal/kvstore"
)

// KeyWorkNotes is the blob key for the note collection.
const KeyWorkNotes = "work_notes"

type workNoteJSON struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ReminderTime time.Time `json:"reminderTime"`
	WeekDays     []int     `json:"weekDays,omitempty"`
	Important    bool      `json:"important"`
	CreatedAt    time.Time `json:"createdAt"`
}

type noteRepository struct {
	store kvstore.Store
}

func NewNoteRepository(store kvstore.Store) note.NoteRepository {
	return &noteRepository{store: store}
}

// LoadAll implements note.NoteRepository.
func (r *noteRepository) LoadAll(ctx context.Context) ([]note.WorkNote, error) {
	blob, err := r.store.Load(ctx, KeyWorkNotes)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return []note.WorkNote{}, nil
		}
		return nil, err
	}

	var records []workNoteJSON
	if err := json.Unmarshal(blob, &records); err != nil {
		return nil, fmt.Errorf("malformed %s blob: %w", KeyWorkNotes, err)
	}

	notes := make([]note.WorkNote, 0, len(records))
	for _, rec := range records {
		notes = append(notes, note.WorkNote{
			ID:           rec.ID,
			Title:        rec.Title,
			Content:      rec.Content,
			ReminderTime: rec.ReminderTime,
			WeekDays:     rec.WeekDays,
			Important:    rec.Important,
			CreatedAt:    rec.CreatedAt,
		})
	}
	return notes, nil
}

// SaveAll implements note.NoteRepository.
func (r *noteRepository) SaveAll(ctx context.Context, notes []note.WorkNote) error {
	records := make([]workNoteJSON, 0, len(notes))
	for _, n := range notes {
		records = append(records, workNoteJSON{
			ID:           n.ID,
			Title:        n.Title,
			Content:      n.Content,
			ReminderTime: n.ReminderTime,
			WeekDays:     n.WeekDays,
			Important:    n.Important,
			CreatedAt:    n.CreatedAt,
		})
	}

	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s blob: %w", KeyWorkNotes, err)
	}
	return r.store.Save(ctx, KeyWorkNotes, blob)
}
