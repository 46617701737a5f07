package workshift

import "errors"

// Work-shift domain errors
var (
	ErrShiftNotFound = errors.New("work shift not found")
)
