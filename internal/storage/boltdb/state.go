package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"clientdesk/internal/models"
	"clientdesk/internal/storage"
)

// LoadState returns the stored application state. When no state document
// exists yet a default empty state is returned. Stored documents go through
// the schema migration step before being handed to the caller, so the
// result is always fully populated.
func (s *Storage) LoadState(ctx context.Context) (*models.AppState, error) {
	var state *models.AppState

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketApp)
		if bucket == nil {
			return fmt.Errorf("app bucket not found")
		}

		data := bucket.Get([]byte(storage.KeyAppState))
		if data == nil {
			state = models.NewAppState()
			return nil
		}

		migrated, err := storage.MigrateState(data)
		if err != nil {
			return err
		}
		state = migrated
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	return state, nil
}

// SaveState overwrites the state document wholesale. Callers pass the
// complete desired state; there is no merge.
func (s *Storage) SaveState(ctx context.Context, state *models.AppState) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketApp)
		if bucket == nil {
			return fmt.Errorf("app bucket not found")
		}

		data, err := json.Marshal(state)
		if err != nil {
			return fmt.Errorf("failed to marshal state: %w", err)
		}

		if err := bucket.Put([]byte(storage.KeyAppState), data); err != nil {
			return fmt.Errorf("failed to save state: %w", err)
		}

		return nil
	})
}
