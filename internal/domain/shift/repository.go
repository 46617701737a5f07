package shift

import "context"

// CardRepository persists the punch card under its own key so a restart
// resumes the cycle where it stopped.
type CardRepository interface {
	// LoadCard restores the stored card. Returns kvstore.ErrKeyNotFound when
	// no card has been saved yet.
	LoadCard(ctx context.Context) (PunchCard, error)

	// SaveCard overwrites the stored card.
	SaveCard(ctx context.Context, card PunchCard) error
}
