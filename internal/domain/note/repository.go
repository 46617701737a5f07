package note

import "context"

// NoteRepository persists the full note collection under the work_notes key.
type NoteRepository interface {
	// LoadAll restores every stored note. An absent blob yields an empty
	// slice, not an error.
	LoadAll(ctx context.Context) ([]WorkNote, error)

	// SaveAll overwrites the stored collection.
	SaveAll(ctx context.Context, notes []WorkNote) error
}
