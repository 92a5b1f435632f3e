package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateState_CurrentFormat(t *testing.T) {
	data := []byte(`{
		"currentUser": {"id": "1", "username": "admin", "password": "admin123", "firstName": "Admin", "lastName": "User"},
		"clients": [{"id": "c1", "fullName": "Acme Corp", "priority": "high"}],
		"reminders": [{"id": "r1", "title": "Call", "date": "2026-01-01", "time": "10:00", "completed": true}]
	}`)

	state, err := MigrateState(data)
	require.NoError(t, err)

	require.NotNil(t, state.CurrentUser)
	assert.Equal(t, "admin", state.CurrentUser.Username)
	require.Len(t, state.Clients, 1)
	assert.Equal(t, "Acme Corp", state.Clients[0].FullName)
	require.Len(t, state.Reminders, 1)
	assert.True(t, state.Reminders[0].Completed)
}

// Reminders written before the completion flag existed load as pending
func TestMigrateState_BackfillsCompleted(t *testing.T) {
	data := []byte(`{
		"currentUser": null,
		"clients": [],
		"reminders": [
			{"id": "r1", "title": "Old", "date": "2026-01-01", "time": "10:00"},
			{"id": "r2", "title": "Done", "date": "2026-01-02", "time": "11:00", "completed": true}
		]
	}`)

	state, err := MigrateState(data)
	require.NoError(t, err)
	require.Len(t, state.Reminders, 2)

	assert.False(t, state.Reminders[0].Completed)
	assert.True(t, state.Reminders[1].Completed)
}

func TestMigrateState_NilSlices(t *testing.T) {
	state, err := MigrateState([]byte(`{"currentUser": null}`))
	require.NoError(t, err)

	assert.NotNil(t, state.Clients)
	assert.NotNil(t, state.Reminders)
	assert.Empty(t, state.Clients)
	assert.Empty(t, state.Reminders)
}

// An unreadable document aborts the load; there is no partial recovery
func TestMigrateState_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"not json", []byte("not json at all")},
		{"truncated", []byte(`{"clients": [`)},
		{"wrong shape", []byte(`[1, 2, 3]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := MigrateState(tt.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCorruptDocument)
			assert.Nil(t, state)
		})
	}
}

func TestMigrateUsers_CurrentFormat(t *testing.T) {
	data := []byte(`[{"id": "1", "username": "admin", "password": "admin123", "firstName": "Admin", "lastName": "User"}]`)

	users, err := MigrateUsers(data)
	require.NoError(t, err)
	require.Len(t, users, 1)

	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "Admin", users[0].FirstName)
	assert.Equal(t, "User", users[0].LastName)
}

// Accounts written before the name fields existed get placeholder names.
// The backfill happens on read and is not persisted.
func TestMigrateUsers_BackfillsNames(t *testing.T) {
	data := []byte(`[
		{"id": "1", "username": "admin", "password": "admin123"},
		{"id": "2", "username": "jo", "password": "pw", "firstName": "Jo", "lastName": "Smith"}
	]`)

	users, err := MigrateUsers(data)
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "Admin", users[0].FirstName)
	assert.Equal(t, "User", users[0].LastName)
	assert.Equal(t, "Jo", users[1].FirstName)
	assert.Equal(t, "Smith", users[1].LastName)
}

func TestMigrateUsers_Corrupt(t *testing.T) {
	users, err := MigrateUsers([]byte(`{"not": "a list"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorruptDocument)
	assert.Nil(t, users)
}
