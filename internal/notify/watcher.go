package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"clientdesk/internal/domain"
	"clientdesk/internal/storage"
)

// Watcher surfaces due reminders as desktop notifications. It runs a
// once-per-minute scan over the full reminder set and has an explicit
// Start/Stop lifecycle owned by the caller; nothing keeps ticking after
// Stop returns.
type Watcher struct {
	state    storage.StateStorage
	notifier Notifier
	log      *slog.Logger

	cron *cron.Cron

	mu    sync.Mutex
	fired map[string]string // reminder id -> minute it last fired
}

// NewWatcher creates a reminder watcher. Each instance gets a correlation
// id so overlapping runs can be told apart in the logs.
func NewWatcher(state storage.StateStorage, notifier Notifier) *Watcher {
	return &Watcher{
		state:    state,
		notifier: notifier,
		log:      slog.Default().With("watcher", uuid.NewString()),
		fired:    make(map[string]string),
	}
}

// Start schedules the minute scan. Calling Start on a running watcher is
// an error.
func (w *Watcher) Start() error {
	if w.cron != nil {
		return fmt.Errorf("watcher already started")
	}

	c := cron.New()
	if _, err := c.AddFunc("* * * * *", func() {
		w.check(time.Now())
	}); err != nil {
		return fmt.Errorf("failed to schedule reminder check: %w", err)
	}

	w.cron = c
	c.Start()
	w.log.Info("reminder watcher started")
	return nil
}

// Stop cancels the schedule and waits for an in-flight scan to finish
func (w *Watcher) Stop() {
	if w.cron == nil {
		return
	}
	<-w.cron.Stop().Done()
	w.cron = nil
	w.log.Info("reminder watcher stopped")
}

// check re-evaluates the full reminder set against the given wall-clock
// minute and fires a notification for each incomplete reminder due exactly
// now. A reminder fires at most once per minute, keyed by its id.
func (w *Watcher) check(now time.Time) {
	state, err := w.state.LoadState(context.Background())
	if err != nil {
		w.log.Error("failed to load state for reminder check", "error", err)
		return
	}

	date := now.Format("2006-01-02")
	minute := now.Format("15:04")
	minuteKey := date + " " + minute

	for _, r := range state.Reminders {
		if r.Completed || r.Date != date || r.Time != minute {
			continue
		}

		w.mu.Lock()
		already := w.fired[r.ID] == minuteKey
		if !already {
			w.fired[r.ID] = minuteKey
		}
		w.mu.Unlock()
		if already {
			continue
		}

		clientName := "No client assigned"
		if c, ok := domain.FindClient(state, r.ClientID); ok {
			clientName = c.FullName
		}

		title := "Reminder: " + r.Title
		body := fmt.Sprintf("Client: %s\nTime: %s\n%s", clientName, r.Time, r.Notes)

		if err := w.notifier.Notify(title, body, r.ID); err != nil {
			w.log.Error("failed to deliver notification", "reminder", r.ID, "error", err)
			continue
		}
		w.log.Info("reminder notification fired", "reminder", r.ID, "title", r.Title)
	}
}
