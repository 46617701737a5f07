package workshift

import "context"

// ShiftService owns the work-shift presets.
type ShiftService interface {
	List(ctx context.Context) ([]ShiftResponse, error)

	// Create stores a new preset. The first preset ever created becomes the
	// active one.
	Create(ctx context.Context, req SaveShiftRequest) (ShiftResponse, error)

	// Update replaces a preset's fields, keeping its active flag.
	Update(ctx context.Context, id string, req SaveShiftRequest) (ShiftResponse, error)

	// Delete removes a preset. Deleting the active preset promotes the first
	// remaining one.
	Delete(ctx context.Context, id string) error

	// SetActive activates one preset and deactivates the rest.
	SetActive(ctx context.Context, id string) (ShiftResponse, error)

	// Active returns the active preset, or nil when none exist.
	Active(ctx context.Context) (*ShiftResponse, error)
}
