package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"clientdesk/internal/models"
	"clientdesk/internal/storage"
)

// defaultUsers returns the account list seeded on first run
func defaultUsers() []models.User {
	return []models.User{
		{
			ID:        "1",
			Username:  "admin",
			Password:  "admin123", // plaintext, see models.User
			FirstName: "Admin",
			LastName:  "User",
		},
	}
}

// LoadUsers returns all local accounts. On the very first call, when no
// account document exists, a default administrator account is created and
// persisted immediately. Existing documents are migrated (missing name
// fields are backfilled) before being returned.
func (s *Storage) LoadUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	err := s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketApp)
		if bucket == nil {
			return fmt.Errorf("app bucket not found")
		}

		data := bucket.Get([]byte(storage.KeyUsers))
		if data == nil {
			// First run: seed and persist the default admin account
			seed := defaultUsers()
			encoded, err := json.Marshal(seed)
			if err != nil {
				return fmt.Errorf("failed to marshal seed accounts: %w", err)
			}
			if err := bucket.Put([]byte(storage.KeyUsers), encoded); err != nil {
				return fmt.Errorf("failed to save seed accounts: %w", err)
			}
			users = seed
			return nil
		}

		migrated, err := storage.MigrateUsers(data)
		if err != nil {
			return err
		}
		users = migrated
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	return users, nil
}

// SaveUser upserts an account by id: a matching entry is replaced in place,
// otherwise the account is appended to the list
func (s *Storage) SaveUser(ctx context.Context, user models.User) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketApp)
		if bucket == nil {
			return fmt.Errorf("app bucket not found")
		}

		var users []models.User
		if data := bucket.Get([]byte(storage.KeyUsers)); data != nil {
			migrated, err := storage.MigrateUsers(data)
			if err != nil {
				return err
			}
			users = migrated
		} else {
			users = defaultUsers()
		}

		replaced := false
		for i := range users {
			if users[i].ID == user.ID {
				users[i] = user
				replaced = true
				break
			}
		}
		if !replaced {
			users = append(users, user)
		}

		encoded, err := json.Marshal(users)
		if err != nil {
			return fmt.Errorf("failed to marshal accounts: %w", err)
		}
		if err := bucket.Put([]byte(storage.KeyUsers), encoded); err != nil {
			return fmt.Errorf("failed to save accounts: %w", err)
		}

		return nil
	})
}
