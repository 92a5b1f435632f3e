package models

import "time"

// Priority represents client priority level
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority levels
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank returns the sort weight of a priority, higher is more urgent.
// Unknown priorities rank as medium.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityLow:
		return 1
	default:
		return 2
	}
}

// User represents a local account.
// The password is stored in plaintext for compatibility with the persisted
// document layout; this is a documented limitation, not a recommendation.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"` // unique across the account list
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Client represents a managed client record
type Client struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Notes     string    `json:"notes"`
	Priority  Priority  `json:"priority"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Reminder represents a dated reminder, optionally linked to a client.
// ClientID is a weak reference: it may be empty or point at a client that
// no longer exists, and lookups must fall back gracefully.
type Reminder struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      string    `json:"date"` // calendar date, YYYY-MM-DD
	Time      string    `json:"time"` // wall clock, HH:MM
	Notes     string    `json:"notes,omitempty"`
	ClientID  string    `json:"clientId,omitempty"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// At returns the reminder's date and time combined into a single local
// timestamp. The zero time and false are returned when either part does
// not parse.
func (r *Reminder) At() (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02T15:04", r.Date+"T"+r.Time, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// AppState is the single combined session document: the embedded current
// user (nil means logged out), all clients and all reminders.
type AppState struct {
	CurrentUser *User      `json:"currentUser"`
	Clients     []Client   `json:"clients"`
	Reminders   []Reminder `json:"reminders"`
}

// NewAppState returns an empty, logged-out application state
func NewAppState() *AppState {
	return &AppState{
		CurrentUser: nil,
		Clients:     []Client{},
		Reminders:   []Reminder{},
	}
}
