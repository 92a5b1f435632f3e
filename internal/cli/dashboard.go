package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"clientdesk/internal/domain"
	"clientdesk/internal/models"
)

func (c *Cli) runDashboard(ctx context.Context, args []string) error {
	if err := c.requireUser(ctx); err != nil {
		return err
	}

	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	sortBy := fs.String("sort", "date", "active reminder sort order: date or priority")
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

	now := time.Now()
	upcoming := domain.UpcomingReminders(state, now)
	active := domain.ActiveReminders(state, mode)
	stats := domain.PriorityStats(state)

	c.io.Println("=== Dashboard ===")
	c.io.Println()
	c.io.Printf("Total clients:    %d\n", len(state.Clients))
	c.io.Printf("Active reminders: %d\n", len(active))
	c.io.Printf("Upcoming:         %d\n", len(upcoming))
	c.io.Printf("Client priority:  %d high / %d medium / %d low\n",
		stats[models.PriorityHigh], stats[models.PriorityMedium], stats[models.PriorityLow])
	c.io.Println()

	c.io.Println("--- Upcoming Reminders ---")
	if len(upcoming) == 0 {
		c.io.Println("Nothing coming up.")
	}
	for i, r := range upcoming {
		c.io.Printf("%d. %s - %s %s (%s)\n", i+1, r.Title, r.Date, r.Time, domain.ClientLabel(state, r.ClientID))
	}
	c.io.Println()

	c.io.Println("--- All Active Reminders ---")
	if len(active) == 0 {
		c.io.Println("No active reminders.")
	}
	for i, r := range active {
		overdue := ""
		if domain.IsOverdue(&r, now) {
			overdue = " (Overdue)"
		}
		c.io.Printf("%d. [%s] %s - %s %s%s\n", i+1,
			domain.ClientPriority(state, r.ClientID), r.Title, r.Date, r.Time, overdue)
	}

	return nil
}
