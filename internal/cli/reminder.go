package cli

import (
	"context"
	"flag"
	"fmt"
	"text/template"
	"time"

	"clientdesk/internal/domain"
	"clientdesk/internal/models"
	"clientdesk/internal/validation"
)

var reminderUsage = "Usage: clientdesk reminder <add|list|get|edit|delete|toggle> [args]"

func (c *Cli) runReminder(ctx context.Context, args []string) error {
	if err := c.requireUser(ctx); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. %s", reminderUsage)
	}

	switch args[0] {
	case "add":
		return c.runReminderAdd(ctx)
	case "list":
		return c.runReminderList(ctx, args[1:])
	case "get":
		return c.runReminderGet(ctx, args[1:])
	case "edit":
		return c.runReminderEdit(ctx, args[1:])
	case "delete":
		return c.runReminderDelete(ctx, args[1:])
	case "toggle":
		return c.runReminderToggle(ctx, args[1:])
	default:
		return fmt.Errorf("unknown subcommand: %s. %s", args[0], reminderUsage)
	}
}

func findReminder(state *models.AppState, id string) (*models.Reminder, bool) {
	for i := range state.Reminders {
		if state.Reminders[i].ID == id {
			return &state.Reminders[i], true
		}
	}
	return nil, false
}

func (c *Cli) runReminderAdd(ctx context.Context) error {
	c.io.Println("=== Add Reminder ===")
	c.io.Println()

	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	date, err := c.io.ReadInput("Date (YYYY-MM-DD): ")
	if err != nil {
		return fmt.Errorf("failed to read date: %w", err)
	}
	if err := validation.ValidateDate(date); err != nil {
		return err
	}

	timeOfDay, err := c.io.ReadInput("Time (HH:MM): ")
	if err != nil {
		return fmt.Errorf("failed to read time: %w", err)
	}
	if err := validation.ValidateTime(timeOfDay); err != nil {
		return err
	}

	clientID, err := c.io.ReadInput("Client ID (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read client ID: %w", err)
	}

	notes, err := c.io.ReadInput("Notes (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	}

	reminder, err := c.domain.SaveReminder(ctx, "", domain.ReminderPatch{
		Title:    &title,
		Date:     &date,
		Time:     &timeOfDay,
		ClientID: &clientID,
		Notes:    &notes,
	})
	if err != nil {
		return fmt.Errorf("failed to add reminder: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Reminder added!")
	c.io.Printf("ID: %s\n", reminder.ID)

	return nil
}

func (c *Cli) runReminderList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reminder list", flag.ContinueOnError)
	sortBy := fs.String("sort", "date", "sort order: date or priority")
	if err := fs.Parse(args); err != nil {
		return err
	}

	mode := domain.SortMode(*sortBy)
	if mode != domain.SortByDate && mode != domain.SortByPriority {
		return fmt.Errorf("unknown sort order: %s. Use: date or priority", *sortBy)
	}

	state, err := c.state.LoadState(ctx)
	if err != nil {
		return err
	}

	active := domain.ActiveReminders(state, mode)

	c.io.Println("=== Active Reminders ===")
	c.io.Println()

	if len(active) == 0 {
		c.io.Println("No active reminders.")
		c.io.Println()
		c.io.Println("Use 'clientdesk reminder add' to add one.")
		return nil
	}

	now := time.Now()
	c.io.Printf("Found %d reminder(s):\n", len(active))
	c.io.Println()

	for i, r := range active {
		overdue := ""
		if domain.IsOverdue(&r, now) {
			overdue = " (Overdue)"
		}
		c.io.Printf("%d. %s - %s %s%s\n", i+1, r.Title, r.Date, r.Time, overdue)
		c.io.Printf("   ID:       %s\n", r.ID)
		c.io.Printf("   Client:   %s [%s]\n", domain.ClientLabel(state, r.ClientID), domain.ClientPriority(state, r.ClientID))
		if r.Notes != "" {
			c.io.Printf("   Notes:    %s\n", r.Notes)
		}
		c.io.Println()
	}

	return nil
}

func (c *Cli) runReminderGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing reminder ID. Usage: clientdesk reminder get <id>")
	}

	state, err := c.state.LoadState(ctx)
	if err != nil {
		return err
	}

	reminder, ok := findReminder(state, args[0])
	if !ok {
		return fmt.Errorf("reminder not found with ID: %s", args[0])
	}

	data := struct {
		Reminder    *models.Reminder
		ClientLabel string
	}{
		Reminder:    reminder,
		ClientLabel: domain.ClientLabel(state, reminder.ClientID),
	}

	tmpl := template.Must(template.New("reminder").Parse(reminderDetailTemplate))
	return tmpl.Execute(c.io, data)
}

func (c *Cli) runReminderEdit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing reminder ID. Usage: clientdesk reminder edit <id>")
	}

	state, err := c.state.LoadState(ctx)
	if err != nil {
		return err
	}

	existing, ok := findReminder(state, args[0])
	if !ok {
		return fmt.Errorf("reminder not found with ID: %s", args[0])
	}

	c.io.Println("=== Edit Reminder ===")
	c.io.Println()
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	patch := domain.ReminderPatch{}

	if v, err := c.io.ReadInput(fmt.Sprintf("Title [%s]: ", existing.Title)); err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	} else if v != "" {
		patch.Title = &v
	}

	if v, err := c.io.ReadInput(fmt.Sprintf("Date [%s]: ", existing.Date)); err != nil {
		return fmt.Errorf("failed to read date: %w", err)
	} else if v != "" {
		patch.Date = &v
	}

	if v, err := c.io.ReadInput(fmt.Sprintf("Time [%s]: ", existing.Time)); err != nil {
		return fmt.Errorf("failed to read time: %w", err)
	} else if v != "" {
		patch.Time = &v
	}

	if v, err := c.io.ReadInput(fmt.Sprintf("Client ID [%s]: ", existing.ClientID)); err != nil {
		return fmt.Errorf("failed to read client ID: %w", err)
	} else if v != "" {
		patch.ClientID = &v
	}

	if v, err := c.io.ReadInput(fmt.Sprintf("Notes [%s]: ", existing.Notes)); err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	} else if v != "" {
		patch.Notes = &v
	}

	updated, err := c.domain.SaveReminder(ctx, existing.ID, patch)
	if err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Reminder updated!")
	c.io.Printf("Title: %s\n", updated.Title)

	return nil
}

func (c *Cli) runReminderDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing reminder ID. Usage: clientdesk reminder delete <id>")
	}

	state, err := c.state.LoadState(ctx)
	if err != nil {
		return err
	}

	reminder, ok := findReminder(state, args[0])
	if !ok {
		return fmt.Errorf("reminder not found with ID: %s", args[0])
	}

	c.io.Println("=== Delete Reminder ===")
	c.io.Println()
	c.io.Println("About to delete:")
	c.io.Printf("  Title: %s\n", reminder.Title)
	c.io.Printf("  When:  %s %s\n", reminder.Date, reminder.Time)
	c.io.Println()

	ok, err = c.confirm("Are you sure you want to delete this reminder? (yes/no): ")
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.domain.DeleteReminder(ctx, reminder.ID); err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	c.io.Println("✓ Reminder deleted")
	return nil
}

func (c *Cli) runReminderToggle(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing reminder ID. Usage: clientdesk reminder toggle <id>")
	}

	reminder, err := c.domain.ToggleReminder(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to toggle reminder: %w", err)
	}

	if reminder.Completed {
		c.io.Printf("✓ %q marked completed\n", reminder.Title)
	} else {
		c.io.Printf("✓ %q marked pending\n", reminder.Title)
	}
	return nil
}
