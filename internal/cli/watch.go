package cli

import (
	"context"

	"clientdesk/internal/notify"
)

// runWatch runs the reminder watcher until the context is cancelled.
// The watcher lifecycle is tied to this command: it starts here and is
// stopped before the command returns, so no timer outlives the view.
func (c *Cli) runWatch(ctx context.Context) error {
	if err := c.requireUser(ctx); err != nil {
		return err
	}

	watcher := notify.NewWatcher(c.state, c.notifier)
	if err := watcher.Start(); err != nil {
		return err
	}
	defer watcher.Stop()

	c.io.Println("Watching reminders. Press Ctrl+C to stop.")
	<-ctx.Done()
	c.io.Println()
	c.io.Println("Stopped.")

	return nil
}
