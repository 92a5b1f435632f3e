package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"clientdesk/internal/storage"
)

// DarkMode reports the stored dark-mode preference. Missing or unreadable
// values default to false: a broken preference flag is not worth aborting
// startup over, unlike the data documents.
func (s *Storage) DarkMode(ctx context.Context) (bool, error) {
	var enabled bool

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketApp)
		if bucket == nil {
			return fmt.Errorf("app bucket not found")
		}

		data := bucket.Get([]byte(storage.KeyDarkMode))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &enabled); err != nil {
			enabled = false
		}
		return nil
	})

	if err != nil {
		return false, fmt.Errorf("failed to load dark mode flag: %w", err)
	}

	return enabled, nil
}

// SetDarkMode stores the dark-mode preference
func (s *Storage) SetDarkMode(ctx context.Context, enabled bool) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketApp)
		if bucket == nil {
			return fmt.Errorf("app bucket not found")
		}

		data, err := json.Marshal(enabled)
		if err != nil {
			return fmt.Errorf("failed to marshal dark mode flag: %w", err)
		}
		if err := bucket.Put([]byte(storage.KeyDarkMode), data); err != nil {
			return fmt.Errorf("failed to save dark mode flag: %w", err)
		}
		return nil
	})
}
