package auth

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clientdesk/internal/storage/boltdb"
)

// createTestService builds an auth service over a fresh BoltDB store, so
// tests exercise the same persistence path as the application
func createTestService(t *testing.T) *Service {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "auth_test.db")
	store, err := boltdb.New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return NewService(store, store)
}

func TestAuthenticate_DefaultAdmin(t *testing.T) {
	ctx := context.Background()
	svc := createTestService(t)

	user, err := svc.Authenticate(ctx, "admin", "admin123")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, "1", user.ID)
	assert.Equal(t, "Admin", user.FirstName)
	assert.Equal(t, "User", user.LastName)
}

func TestAuthenticate_Failures(t *testing.T) {
	ctx := context.Background()
	svc := createTestService(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "wrong"},
		{"unknown username", "nobody", "admin123"},
		{"case-sensitive username", "Admin", "admin123"},
		{"case-sensitive password", "admin", "ADMIN123"},
		{"empty credentials", "", ""},
	}

	// an unknown username and a wrong password must be indistinguishable
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Authenticate(ctx, tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Nil(t, user)
		})
	}
}

func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	svc := createTestService(t)

	user, err := svc.Register(ctx, "jo_smith", "secret", "Jo", "Smith")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "jo_smith", user.Username)

	// the new account can log in immediately
	authed, err := svc.Authenticate(ctx, "jo_smith", "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
}

func TestRegister_UsernameTaken(t *testing.T) {
	ctx := context.Background()
	svc := createTestService(t)

	user, err := svc.Register(ctx, "admin", "whatever", "Other", "Admin")
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Nil(t, user)

	// the original account is untouched
	existing, err := svc.Authenticate(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "1", existing.ID)
}

func TestRegister_InvalidInput(t *testing.T) {
	ctx := context.Background()
	svc := createTestService(t)

	_, err := svc.Register(ctx, "ab", "secret", "Jo", "Smith")
	assert.Error(t, err)

	_, err = svc.Register(ctx, "jo smith", "secret", "Jo", "Smith")
	assert.Error(t, err)

	_, err = svc.Register(ctx, "jo_smith", "", "Jo", "Smith")
	assert.Error(t, err)
}

func TestLoginLogout_Session(t *testing.T) {
	ctx := context.Background()
	svc := createTestService(t)

	// logged out by default
	_, err := svc.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	user, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	require.NotNil(t, user)

	current, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, current.ID)

	require.NoError(t, svc.Logout(ctx))

	_, err = svc.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	// logging out while logged out is a no-op
	assert.NoError(t, svc.Logout(ctx))
}

func TestLogin_BadCredentialsLeaveSessionUntouched(t *testing.T) {
	ctx := context.Background()
	svc := createTestService(t)

	_, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	current, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", current.Username)
}

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateID()

		// millisecond timestamp prefix plus 9 base36 characters
		require.Greater(t, len(id), 9)
		prefix := id[:len(id)-9]
		assert.True(t, strings.IndexFunc(prefix, func(r rune) bool {
			return r < '0' || r > '9'
		}) == -1, "prefix %q must be numeric", prefix)

		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}
