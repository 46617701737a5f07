package settings

// Preferences are the per-device options. Each field persists under its own
// key-value entry, mirroring how the settings screen stored them.
type Preferences struct {
	Language         string
	DarkMode         bool
	SoundEnabled     bool
	VibrationEnabled bool
}

// Defaults returns the out-of-the-box preferences.
func Defaults(language string) Preferences {
	if language != "vi" && language != "en" {
		language = "vi"
	}
	return Preferences{
		Language:         language,
		DarkMode:         false,
		SoundEnabled:     true,
		VibrationEnabled: true,
	}
}
