package note

import "context"

// NoteService owns the work-note collection.
type NoteService interface {
	// List returns notes sorted ascending by reminder time. When all is
	// false the result is capped to the ViewCap soonest notes; the stored
	// collection is returned whole otherwise.
	List(ctx context.Context, all bool) (ListResponse, error)

	// Add stores a new note under a fresh id.
	Add(ctx context.Context, req SaveNoteRequest) (NoteResponse, error)

	// Edit replaces the note with the given id. Unknown ids yield
	// ErrNoteNotFound.
	Edit(ctx context.Context, id string, req SaveNoteRequest) (NoteResponse, error)

	// Delete removes a note by id. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id string) error
}
