package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/settings"
	"github.com/workwhisperer/timekeeper-backend-go/internal/kvstore"
)

// Preference keys match the ones the settings screen wrote to local storage.
const (
	KeyLanguage         = "language"
	KeyDarkMode         = "darkMode"
	KeySoundEnabled     = "soundEnabled"
	KeyVibrationEnabled = "vibrationEnabled"
)

type preferencesRepository struct {
	store kvstore.Store
}

func NewPreferencesRepository(store kvstore.Store) settings.PreferencesRepository {
	return &preferencesRepository{store: store}
}

// Load implements settings.PreferencesRepository.
func (r *preferencesRepository) Load(ctx context.Context, defaults settings.Preferences) (settings.Preferences, error) {
	prefs := defaults

	if err := r.loadString(ctx, KeyLanguage, &prefs.Language); err != nil {
		return settings.Preferences{}, err
	}
	if err := r.loadBool(ctx, KeyDarkMode, &prefs.DarkMode); err != nil {
		return settings.Preferences{}, err
	}
	if err := r.loadBool(ctx, KeySoundEnabled, &prefs.SoundEnabled); err != nil {
		return settings.Preferences{}, err
	}
	if err := r.loadBool(ctx, KeyVibrationEnabled, &prefs.VibrationEnabled); err != nil {
		return settings.Preferences{}, err
	}

	return prefs, nil
}

// Save implements settings.PreferencesRepository.
func (r *preferencesRepository) Save(ctx context.Context, prefs settings.Preferences) error {
	entries := map[string]any{
		KeyLanguage:         prefs.Language,
		KeyDarkMode:         prefs.DarkMode,
		KeySoundEnabled:     prefs.SoundEnabled,
		KeyVibrationEnabled: prefs.VibrationEnabled,
	}

	for key, value := range entries {
		blob, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode preference %s: %w", key, err)
		}
		if err := r.store.Save(ctx, key, blob); err != nil {
			return err
		}
	}
	return nil
}

func (r *preferencesRepository) loadString(ctx context.Context, key string, dst *string) error {
	blob, err := r.store.Load(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(blob, dst); err != nil {
		return fmt.Errorf("malformed preference %s: %w", key, err)
	}
	return nil
}

func (r *preferencesRepository) loadBool(ctx context.Context, key string, dst *bool) error {
	blob, err := r.store.Load(ctx, key)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(blob, dst); err != nil {
		return fmt.Errorf("malformed preference %s: %w", key, err)
	}
	return nil
}
