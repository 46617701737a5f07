package settings

import (
	"context"

	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/settings"
)

type PreferencesServiceImpl struct {
	settings.PreferencesRepository
	defaults settings.Preferences
}

func NewPreferencesService(prefsRepo settings.PreferencesRepository, defaultLanguage string) settings.PreferencesService {
	return &PreferencesServiceImpl{
		PreferencesRepository: prefsRepo,
		defaults:              settings.Defaults(defaultLanguage),
	}
}

// Get implements settings.PreferencesService.
func (s *PreferencesServiceImpl) Get(ctx context.Context) (settings.PreferencesResponse, error) {
	prefs, err := s.Load(ctx, s.defaults)
	if err != nil {
		return settings.PreferencesResponse{}, err
	}
	return settings.ToResponse(prefs), nil
}

// Update implements settings.PreferencesService.
func (s *PreferencesServiceImpl) Update(ctx context.Context, req settings.UpdateRequest) (settings.PreferencesResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.PreferencesResponse{}, err
	}

	prefs, err := s.Load(ctx, s.defaults)
	if err != nil {
		return settings.PreferencesResponse{}, err
	}

	if req.Language != nil {
		prefs.Language = *req.Language
	}
	if req.DarkMode != nil {
		prefs.DarkMode = *req.DarkMode
	}
	if req.SoundEnabled != nil {
		prefs.SoundEnabled = *req.SoundEnabled
	}
	if req.VibrationEnabled != nil {
		prefs.VibrationEnabled = *req.VibrationEnabled
	}

	if err := s.Save(ctx, prefs); err != nil {
		return settings.PreferencesResponse{}, err
	}
	return settings.ToResponse(prefs), nil
}

// Language implements settings.PreferencesService. Falls back to the default
// language when preferences cannot be read; localized text is best-effort.
func (s *PreferencesServiceImpl) Language(ctx context.Context) string {
	prefs, err := s.Load(ctx, s.defaults)
	if err != nil {
		return s.defaults.Language
	}
	return prefs.Language
}
