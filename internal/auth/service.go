package auth

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"clientdesk/internal/models"
	"clientdesk/internal/storage"
	"clientdesk/internal/validation"
)

var (
	// ErrUsernameTaken indicates that registration was declined because
	// the username is already in use (case-sensitive exact match)
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials is returned uniformly for an unknown username
	// and for a wrong password, so the two cannot be told apart
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotAuthenticated indicates that no user is logged in
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Service provides account registration and session management.
//
// Passwords are compared and stored in plaintext. This matches the persisted
// account document the application has always used; changing the credential
// format would break existing stores, so it is kept and flagged here rather
// than silently fixed.
type Service struct {
	users storage.UserStorage
	state storage.StateStorage
}

// NewService creates a new auth service
func NewService(users storage.UserStorage, state storage.StateStorage) *Service {
	return &Service{
		users: users,
		state: state,
	}
}

// Authenticate looks up an account by exact (username, password) match.
// Returns ErrInvalidCredentials when nothing matches.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	users, err := s.users.LoadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	for i := range users {
		if users[i].Username == username && users[i].Password == password {
			u := users[i]
			return &u, nil
		}
	}

	return nil, ErrInvalidCredentials
}

// Register creates a new account. The registration is declined with
// ErrUsernameTaken when the username is already present; the account list
// is not mutated in that case.
func (s *Service) Register(ctx context.Context, username, password, firstName, lastName string) (*models.User, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	users, err := s.users.LoadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	for i := range users {
		if users[i].Username == username {
			return nil, ErrUsernameTaken
		}
	}

	user := models.User{
		ID:        GenerateID(),
		Username:  username,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	}

	if err := s.users.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	return &user, nil
}

// Login authenticates and embeds the account into the session document as
// the current user
func (s *Service) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	state, err := s.state.LoadState(ctx)
	if err != nil {
		return nil, err
	}

	state.CurrentUser = user
	if err := s.state.SaveState(ctx, state); err != nil {
		return nil, err
	}

	return user, nil
}

// Logout clears the current user from the session document. Logging out
// while already logged out is a no-op.
func (s *Service) Logout(ctx context.Context) error {
	state, err := s.state.LoadState(ctx)
	if err != nil {
		return err
	}

	state.CurrentUser = nil
	return s.state.SaveState(ctx, state)
}

// CurrentUser returns the logged-in account, or ErrNotAuthenticated
func (s *Service) CurrentUser(ctx context.Context) (*models.User, error) {
	state, err := s.state.LoadState(ctx)
	if err != nil {
		return nil, err
	}
	if state.CurrentUser == nil {
		return nil, ErrNotAuthenticated
	}
	return state.CurrentUser, nil
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateID returns a new entity id: the current millisecond timestamp
// followed by a 9-character random base36 suffix. Not cryptographically
// secure and not globally unique, but sufficient for a single-writer
// interactive store.
func GenerateID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36[rand.IntN(len(base36))]
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + string(suffix)
}
