package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriority_Valid(t *testing.T) {
	assert.True(t, PriorityLow.Valid())
	assert.True(t, PriorityMedium.Valid())
	assert.True(t, PriorityHigh.Valid())
	assert.False(t, Priority("urgent").Valid())
	assert.False(t, Priority("").Valid())
}

func TestPriority_Rank(t *testing.T) {
	assert.Equal(t, 3, PriorityHigh.Rank())
	assert.Equal(t, 2, PriorityMedium.Rank())
	assert.Equal(t, 1, PriorityLow.Rank())

	// unknown priorities rank as medium
	assert.Equal(t, 2, Priority("urgent").Rank())
	assert.Equal(t, 2, Priority("").Rank())
}

func TestReminder_At(t *testing.T) {
	r := Reminder{Date: "2026-03-15", Time: "14:30"}

	at, ok := r.At()
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local), at)
}

func TestReminder_At_Unparseable(t *testing.T) {
	tests := []struct {
		name string
		date string
		tm   string
	}{
		{"empty date", "", "14:30"},
		{"empty time", "2026-03-15", ""},
		{"garbage date", "not-a-date", "14:30"},
		{"day out of range", "2026-02-30", "14:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Reminder{Date: tt.date, Time: tt.tm}
			_, ok := r.At()
			assert.False(t, ok)
		})
	}
}

func TestNewAppState(t *testing.T) {
	state := NewAppState()
	require.NotNil(t, state)

	assert.Nil(t, state.CurrentUser)
	assert.NotNil(t, state.Clients)
	assert.NotNil(t, state.Reminders)
	assert.Empty(t, state.Clients)
	assert.Empty(t, state.Reminders)
}

// The persisted document uses camelCase field names; a rename would break
// every existing store.
func TestAppState_JSONFieldNames(t *testing.T) {
	state := &AppState{
		CurrentUser: &User{ID: "1", Username: "admin"},
		Clients: []Client{
			{ID: "c1", FullName: "Acme Corp", Priority: PriorityHigh},
		},
		Reminders: []Reminder{
			{ID: "r1", Title: "Call", Date: "2026-01-01", Time: "10:00", ClientID: "c1"},
		},
	}

	data, err := json.Marshal(state)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Contains(t, doc, "currentUser")
	assert.Contains(t, doc, "clients")
	assert.Contains(t, doc, "reminders")

	client := doc["clients"].([]any)[0].(map[string]any)
	assert.Contains(t, client, "fullName")
	assert.Contains(t, client, "createdAt")
	assert.Contains(t, client, "updatedAt")

	reminder := doc["reminders"].([]any)[0].(map[string]any)
	assert.Contains(t, reminder, "clientId")
	assert.Contains(t, reminder, "completed")
}
