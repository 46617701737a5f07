package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workwhisperer/timekeeper-backend-go/internal/kvstore"
)

func TestStore_SaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Load(ctx, "missing")
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)

	require.NoError(t, store.Save(ctx, "language", []byte(`"vi"`)))

	value, err := store.Load(ctx, "language")
	require.NoError(t, err)
	assert.Equal(t, []byte(`"vi"`), value)

	require.NoError(t, store.Delete(ctx, "language"))
	_, err = store.Load(ctx, "language")
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)

	// Deleting an absent key is a no-op
	assert.NoError(t, store.Delete(ctx, "language"))
}

func TestStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	original := []byte("abc")
	require.NoError(t, store.Save(ctx, "k", original))
	original[0] = 'z'

	loaded, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), loaded)

	// Mutating a loaded value must not leak back into the store
	loaded[0] = 'z'
	again, err := store.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
