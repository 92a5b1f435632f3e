package storage

import (
	"context"

	"clientdesk/internal/models"
)

// Fixed document keys in the persistent store. The layout mirrors the
// historical browser-local storage of the application, so existing data
// imported from it stays readable.
const (
	KeyAppState = "clientManagementApp"
	KeyUsers    = "users"
	KeyDarkMode = "darkMode"
)

// StateStorage defines the interface for the combined session document.
// Saves are full overwrites: callers must pass the complete desired state.
type StateStorage interface {
	// LoadState returns the stored application state, or a default empty
	// state if none has been saved yet. The stored document is migrated
	// to the current schema before being returned.
	LoadState(ctx context.Context) (*models.AppState, error)

	// SaveState overwrites the state document with the given value
	SaveState(ctx context.Context, state *models.AppState) error
}

// UserStorage defines the interface for the local account list
type UserStorage interface {
	// LoadUsers returns all accounts. On the first-ever call it seeds a
	// default administrator account and persists it immediately.
	LoadUsers(ctx context.Context) ([]models.User, error)

	// SaveUser upserts an account by id: replaces a matching entry,
	// appends otherwise
	SaveUser(ctx context.Context, user models.User) error
}

// SettingsStorage defines the interface for UI preference flags, which have
// their own lifecycle independent of the session document
type SettingsStorage interface {
	// DarkMode reports the stored dark-mode preference, false by default
	DarkMode(ctx context.Context) (bool, error)

	// SetDarkMode stores the dark-mode preference
	SetDarkMode(ctx context.Context, enabled bool) error
}

// Storage combines all store surfaces backed by one database
type Storage interface {
	StateStorage
	UserStorage
	SettingsStorage
}
