package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workwhisperer/timekeeper-backend-go/internal/domain/settings"
	"github.com/workwhisperer/timekeeper-backend-go/internal/kvstore/memory"
	"github.com/workwhisperer/timekeeper-backend-go/internal/pkg/validator"
	"github.com/workwhisperer/timekeeper-backend-go/internal/repository/kv"
)

func newTestPreferencesService() settings.PreferencesService {
	store := memory.NewStore()
	return NewPreferencesService(kv.NewPreferencesRepository(store), "vi")
}

func TestPreferencesService_Get_Defaults(t *testing.T) {
	ctx := context.Background()
	prefsSvc := newTestPreferencesService()

	prefs, err := prefsSvc.Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, "vi", prefs.Language)
	assert.False(t, prefs.DarkMode)
	assert.True(t, prefs.SoundEnabled)
	assert.True(t, prefs.VibrationEnabled)
}

func TestPreferencesService_Update_Partial(t *testing.T) {
	ctx := context.Background()
	prefsSvc := newTestPreferencesService()

	darkMode := true
	updated, err := prefsSvc.Update(ctx, settings.UpdateRequest{DarkMode: &darkMode})
	require.NoError(t, err)

	// Untouched fields keep their values
	assert.True(t, updated.DarkMode)
	assert.Equal(t, "vi", updated.Language)
	assert.True(t, updated.SoundEnabled)

	lang := "en"
	sound := false
	updated, err = prefsSvc.Update(ctx, settings.UpdateRequest{Language: &lang, SoundEnabled: &sound})
	require.NoError(t, err)
	assert.Equal(t, "en", updated.Language)
	assert.False(t, updated.SoundEnabled)
	assert.True(t, updated.DarkMode)
}

func TestPreferencesService_Update_UnknownLanguage(t *testing.T) {
	ctx := context.Background()
	prefsSvc := newTestPreferencesService()

	lang := "fr"
	_, err := prefsSvc.Update(ctx, settings.UpdateRequest{Language: &lang})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestPreferencesService_Language(t *testing.T) {
	ctx := context.Background()
	prefsSvc := newTestPreferencesService()

	assert.Equal(t, "vi", prefsSvc.Language(ctx))

	lang := "en"
	_, err := prefsSvc.Update(ctx, settings.UpdateRequest{Language: &lang})
	require.NoError(t, err)
	assert.Equal(t, "en", prefsSvc.Language(ctx))
}
