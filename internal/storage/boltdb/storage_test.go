package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"clientdesk/internal/storage"
)

// createTestStorage opens a fresh BoltDB store in a temp dir
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

// putRaw writes raw bytes under a key in the app bucket, bypassing the
// typed save paths. Used to simulate documents written by older versions
// or corrupted on disk.
func putRaw(t *testing.T, store *Storage, key string, data []byte) {
	t.Helper()

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketApp).Put([]byte(key), data)
	})
	require.NoError(t, err)
}

// getRaw reads the raw bytes stored under a key in the app bucket
func getRaw(t *testing.T, store *Storage, key string) []byte {
	t.Helper()

	var data []byte
	err := store.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(bucketApp).Get([]byte(key)); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	require.NoError(t, err)
	return data
}

func TestNew_Success(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		require.NoError(t, store.Close())
	}()

	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// the app bucket must exist after New
	err = store.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketApp) == nil {
			return os.ErrNotExist
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	invalidPath := string([]byte{0})
	store, err := New(context.Background(), invalidPath)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestClose_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	require.NoError(t, store.Close())
	assert.Nil(t, store.db)

	// second close is a no-op
	assert.NoError(t, store.Close())
}

func TestUseAfterClose(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.LoadState(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.SetDarkMode(ctx, true)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
