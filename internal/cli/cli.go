package cli

import (
	"context"
	"fmt"

	"clientdesk/internal/auth"
	"clientdesk/internal/domain"
	"clientdesk/internal/iocli"
	"clientdesk/internal/notify"
	"clientdesk/internal/storage"
)

// Cli dispatches user commands into the auth and domain services. All
// terminal interaction goes through the IO abstraction so commands stay
// testable.
type Cli struct {
	io       iocli.IO
	auth     *auth.Service
	domain   *domain.Service
	state    storage.StateStorage
	settings storage.SettingsStorage
	notifier notify.Notifier
}

// New creates the command dispatcher
func New(io iocli.IO, authService *auth.Service, domainService *domain.Service, state storage.StateStorage, settings storage.SettingsStorage, notifier notify.Notifier) *Cli {
	return &Cli{
		io:       io,
		auth:     authService,
		domain:   domainService,
		state:    state,
		settings: settings,
		notifier: notifier,
	}
}

// Run executes a single command
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "client":
		return c.runClient(ctx, args)
	case "reminder":
		return c.runReminder(ctx, args)
	case "dashboard":
		return c.runDashboard(ctx, args)
	case "calendar":
		return c.runCalendar(ctx, args)
	case "export":
		return c.runExport(ctx, args)
	case "watch":
		return c.runWatch(ctx)
	case "theme":
		return c.runTheme(ctx, args)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// requireUser returns an error unless someone is logged in
func (c *Cli) requireUser(ctx context.Context) error {
	if _, err := c.auth.CurrentUser(ctx); err != nil {
		if err == auth.ErrNotAuthenticated {
			return fmt.Errorf("not authenticated. Please run 'clientdesk login' first")
		}
		return err
	}
	return nil
}

// confirm asks a yes/no question; anything but "yes"/"y" declines
func (c *Cli) confirm(prompt string) (bool, error) {
	answer, err := c.io.ReadInput(prompt)
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return answer == "yes" || answer == "y", nil
}

// PrintUsage writes the top-level help text
func (c *Cli) PrintUsage() {
	PrintUsage(c.io)
}

// PrintUsage writes the top-level help text to the given IO
func PrintUsage(io iocli.IO) {
	io.Printf("%s", usageTemplate)
}
