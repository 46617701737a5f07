package settings

import "context"

// PreferencesRepository persists each preference under its own key.
type PreferencesRepository interface {
	// Load restores stored preferences, falling back to the given defaults
	// for any key never written.
	Load(ctx context.Context, defaults Preferences) (Preferences, error)

	// Save writes every preference key.
	Save(ctx context.Context, prefs Preferences) error
}
