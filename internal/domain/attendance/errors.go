package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidStatus  = errors.New("unknown attendance status")
	ErrInvalidDateKey = errors.New("date key must be yyyy-MM-dd")
	ErrFutureDateEdit = errors.New("cannot edit a day in the future")
)
