package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientdesk/internal/storage"
)

func TestDarkMode_DefaultsToFalse(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	enabled, err := store.DarkMode(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestSetDarkMode_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SetDarkMode(ctx, true))

	enabled, err := store.DarkMode(ctx)
	require.NoError(t, err)
	assert.True(t, enabled)

	require.NoError(t, store.SetDarkMode(ctx, false))

	enabled, err = store.DarkMode(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)
}

// A broken preference flag falls back to the default instead of failing
// the load
func TestDarkMode_UnreadableValue(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	putRaw(t, store, storage.KeyDarkMode, []byte("not a bool"))

	enabled, err := store.DarkMode(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)
}
