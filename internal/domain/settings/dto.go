package settings

import (
	"github.com/workwhisperer/timekeeper-backend-go/internal/pkg/validator"
)

// UpdateRequest is a partial preferences update: nil fields are untouched.
type UpdateRequest struct {
	Language         *string `json:"language,omitempty"`
	DarkMode         *bool   `json:"dark_mode,omitempty"`
	SoundEnabled     *bool   `json:"sound_enabled,omitempty"`
	VibrationEnabled *bool   `json:"vibration_enabled,omitempty"`
}

func (r UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Language != nil && !validator.IsInSlice(*r.Language, []string{"vi", "en"}) {
		errs = append(errs, validator.ValidationError{Field: "language", Message: "language must be vi or en"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PreferencesResponse is the serialized preferences.
type PreferencesResponse struct {
	Language         string `json:"language"`
	DarkMode         bool   `json:"dark_mode"`
	SoundEnabled     bool   `json:"sound_enabled"`
	VibrationEnabled bool   `json:"vibration_enabled"`
}

func ToResponse(p Preferences) PreferencesResponse {
	return PreferencesResponse{
		Language:         p.Language,
		DarkMode:         p.DarkMode,
		SoundEnabled:     p.SoundEnabled,
		VibrationEnabled: p.VibrationEnabled,
	}
}
