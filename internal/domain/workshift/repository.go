package workshift

import "context"

// ShiftRepository persists the preset list under the work_shifts key.
type ShiftRepository interface {
	// LoadAll restores every stored preset. An absent blob yields an empty
	// slice, not an error.
	LoadAll(ctx context.Context) ([]WorkShift, error)

	// SaveAll overwrites the stored list.
	SaveAll(ctx context.Context, shifts []WorkShift) error
}
