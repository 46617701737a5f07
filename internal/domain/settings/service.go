package settings

import "context"

// PreferencesService owns the device preferences.
type PreferencesService interface {
	Get(ctx context.Context) (PreferencesResponse, error)
	Update(ctx context.Context, req UpdateRequest) (PreferencesResponse, error)

	// Language returns the current display language, used by the other
	// services for localized derived text.
	Language(ctx context.Context) string
}
