package domain

import (
	"sort"
	"strings"
	"time"

	"clientdesk/internal/models"
)

// Derived queries over the application state. These are pure functions with
// no persistence side effects; the presentation layer calls them on the
// state it already holds.

// SortMode selects the ordering of the active-reminder listing
type SortMode string

const (
	SortByDate     SortMode = "date"
	SortByPriority SortMode = "priority"
)

// UpcomingLimit caps the upcoming-reminder listing
const UpcomingLimit = 5

// FindClient returns the client with the given id
func FindClient(state *models.AppState, clientID string) (*models.Client, bool) {
	for i := range state.Clients {
		if state.Clients[i].ID == clientID {
			return &state.Clients[i], true
		}
	}
	return nil, false
}

// ClientLabel returns the full name of the referenced client, or "No client"
// when the reference is empty or dangling
func ClientLabel(state *models.AppState, clientID string) string {
	if c, ok := FindClient(state, clientID); ok {
		return c.FullName
	}
	return "No client"
}

// ClientPriority returns the priority of the referenced client. A missing
// client or an unknown priority resolves to medium.
func ClientPriority(state *models.AppState, clientID string) models.Priority {
	if c, ok := FindClient(state, clientID); ok && c.Priority.Valid() {
		return c.Priority
	}
	return models.PriorityMedium
}

// reminderAt resolves the reminder timestamp for sorting and comparisons.
// Unparseable reminders sort to the far future so they never look due.
func reminderAt(r *models.Reminder) time.Time {
	if at, ok := r.At(); ok {
		return at
	}
	return time.Unix(1<<62, 0)
}

// UpcomingReminders returns up to UpcomingLimit incomplete reminders whose
// timestamp is at or after now, in ascending chronological order
func UpcomingReminders(state *models.AppState, now time.Time) []models.Reminder {
	upcoming := make([]models.Reminder, 0)
	for _, r := range state.Reminders {
		if r.Completed {
			continue
		}
		if at, ok := r.At(); ok && !at.Before(now) {
			upcoming = append(upcoming, r)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return reminderAt(&upcoming[i]).Before(reminderAt(&upcoming[j]))
	})

	if len(upcoming) > UpcomingLimit {
		upcoming = upcoming[:UpcomingLimit]
	}
	return upcoming
}

// ActiveReminders returns all incomplete reminders. With SortByDate they are
// ordered chronologically; with SortByPriority they are ordered by the
// priority derived from the associated client (high first, medium fallback),
// with the timestamp as tie-break.
func ActiveReminders(state *models.AppState, mode SortMode) []models.Reminder {
	active := make([]models.Reminder, 0)
	for _, r := range state.Reminders {
		if !r.Completed {
			active = append(active, r)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		if mode == SortByPriority {
			pi := ClientPriority(state, active[i].ClientID).Rank()
			pj := ClientPriority(state, active[j].ClientID).Rank()
			if pi != pj {
				return pi > pj
			}
		}
		return reminderAt(&active[i]).Before(reminderAt(&active[j]))
	})

	return active
}

// RemindersForDate returns the incomplete reminders on the given calendar
// date, for the calendar day cells
func RemindersForDate(state *models.AppState, date string) []models.Reminder {
	matched := make([]models.Reminder, 0)
	for _, r := range state.Reminders {
		if !r.Completed && r.Date == date {
			matched = append(matched, r)
		}
	}
	return matched
}

// IsOverdue reports whether an incomplete reminder's timestamp has passed
func IsOverdue(r *models.Reminder, now time.Time) bool {
	at, ok := r.At()
	return ok && at.Before(now)
}

// FilterClients returns the clients matching a case-insensitive substring
// search on full name or email, restricted to the given priority.
// An empty search matches everything; priority "all" disables the filter.
func FilterClients(state *models.AppState, search string, priority string) []models.Client {
	needle := strings.ToLower(search)

	matched := make([]models.Client, 0)
	for _, c := range state.Clients {
		matchesSearch := needle == "" ||
			strings.Contains(strings.ToLower(c.FullName), needle) ||
			strings.Contains(strings.ToLower(c.Email), needle)
		matchesPriority := priority == "" || priority == "all" || string(c.Priority) == priority
		if matchesSearch && matchesPriority {
			matched = append(matched, c)
		}
	}
	return matched
}

// PriorityStats counts clients per priority level
func PriorityStats(state *models.AppState) map[models.Priority]int {
	stats := map[models.Priority]int{
		models.PriorityLow:    0,
		models.PriorityMedium: 0,
		models.PriorityHigh:   0,
	}
	for _, c := range state.Clients {
		stats[c.Priority]++
	}
	return stats
}
