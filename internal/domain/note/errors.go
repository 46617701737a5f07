package note

import "errors"

// Note domain errors
var (
	ErrNoteNotFound = errors.New("note not found")
)
