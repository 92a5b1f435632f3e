package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"clientdesk/internal/models"
)

// Older documents were written by versions of the application that did not
// have all of today's fields. Instead of sprinkling backfills across read
// paths, decoding goes through an intermediate document form and an ordered
// list of migration steps, so every load returns a fully-populated record.

// reminderDoc is the on-disk form of a reminder. Completed is a pointer so
// a missing field can be told apart from an explicit false.
type reminderDoc struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Notes     string    `json:"notes,omitempty"`
	ClientID  string    `json:"clientId,omitempty"`
	Completed *bool     `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// stateDoc is the on-disk form of the application state
type stateDoc struct {
	CurrentUser *models.User    `json:"currentUser"`
	Clients     []models.Client `json:"clients"`
	Reminders   []reminderDoc   `json:"reminders"`
}

// userDoc is the on-disk form of an account. First and last name were added
// after the first release and may be absent in old documents.
type userDoc struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

var stateMigrations = []func(*stateDoc){
	backfillReminderCompleted,
}

var userMigrations = []func(*userDoc){
	backfillUserNames,
}

// backfillReminderCompleted fills in completed=false on reminders written
// before the completion flag existed
func backfillReminderCompleted(doc *stateDoc) {
	for i := range doc.Reminders {
		if doc.Reminders[i].Completed == nil {
			f := false
			doc.Reminders[i].Completed = &f
		}
	}
}

// backfillUserNames fills in placeholder names on accounts written before
// the first/last name fields existed
func backfillUserNames(u *userDoc) {
	if u.FirstName == "" {
		u.FirstName = "Admin"
	}
	if u.LastName == "" {
		u.LastName = "User"
	}
}

// MigrateState decodes a stored state document, runs all migration steps and
// returns the typed, fully-populated state. A decode failure is reported as
// ErrCorruptDocument and aborts the load: there is no partial recovery.
func MigrateState(data []byte) (*models.AppState, error) {
	var doc stateDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: state: %v", ErrCorruptDocument, err)
	}

	for _, step := range stateMigrations {
		step(&doc)
	}

	state := &models.AppState{
		CurrentUser: doc.CurrentUser,
		Clients:     doc.Clients,
		Reminders:   make([]models.Reminder, 0, len(doc.Reminders)),
	}
	if state.Clients == nil {
		state.Clients = []models.Client{}
	}
	for _, r := range doc.Reminders {
		state.Reminders = append(state.Reminders, models.Reminder{
			ID:        r.ID,
			Title:     r.Title,
			Date:      r.Date,
			Time:      r.Time,
			Notes:     r.Notes,
			ClientID:  r.ClientID,
			Completed: *r.Completed,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}

	return state, nil
}

// MigrateUsers decodes a stored account list and runs all migration steps
func MigrateUsers(data []byte) ([]models.User, error) {
	var docs []userDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("%w: users: %v", ErrCorruptDocument, err)
	}

	users := make([]models.User, 0, len(docs))
	for _, d := range docs {
		for _, step := range userMigrations {
			step(&d)
		}
		users = append(users, models.User{
			ID:        d.ID,
			Username:  d.Username,
			Password:  d.Password,
			FirstName: d.FirstName,
			LastName:  d.LastName,
		})
	}

	return users, nil
}
