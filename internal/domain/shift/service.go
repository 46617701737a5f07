package shift

import "context"

// CardService drives the daily punch cycle.
type CardService interface {
	// GetCard returns the current card without mutating it.
	GetCard(ctx context.Context) (CardResponse, error)

	// Advance runs the next punch in the cycle when req confirms it,
	// recording the current wall-clock time. An unconfirmed request returns
	// the would-be action and changes nothing.
	Advance(ctx context.Context, req ConfirmRequest) (CardResponse, error)

	// Reset clears all three timestamps and returns to idle from any state.
	// Resetting an idle card is a no-op. Subject to the same confirm gate.
	Reset(ctx context.Context, req ConfirmRequest) (CardResponse, error)
}
