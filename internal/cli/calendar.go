package cli

import (
	"context"
	"fmt"
	"time"

	"clientdesk/internal/calendar"
	"clientdesk/internal/domain"
)

func (c *Cli) runCalendar(ctx context.Context, args []string) error {
	if err := c.requireUser(ctx); err != nil {
		return err
	}

	month := calendar.MonthOf(time.Now())
	if len(args) > 0 {
		parsed, err := calendar.ParseMonth(args[0])
		if err != nil {
			return err
		}
		month = parsed
	}

	state, err := c.state.LoadState(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("=== %s ===\n", month.Label())
	c.io.Println()
	c.io.Println("  Sun   Mon   Tue   Wed   Thu   Fri   Sat")

	for _, week := range month.Grid() {
		line := ""
		for _, day := range week {
			if day == 0 {
				line += "      "
				continue
			}
			count := len(domain.RemindersForDate(state, month.DateString(day)))
			if count > 0 {
				line += fmt.Sprintf(" %2d*%-2d", day, count)
			} else {
				line += fmt.Sprintf(" %2d   ", day)
			}
		}
		c.io.Println(line)
	}

	c.io.Println()
	c.io.Println("Days marked with * have that many pending reminders.")
	c.io.Println()

	// Per-day detail below the grid, in month order
	for day := 1; day <= month.Days(); day++ {
		date := month.DateString(day)
		reminders := domain.RemindersForDate(state, date)
		if len(reminders) == 0 {
			continue
		}
		c.io.Printf("%s:\n", date)
		for _, r := range reminders {
			c.io.Printf("  %s  %s (%s)\n", r.Time, r.Title, domain.ClientLabel(state, r.ClientID))
		}
	}

	return nil
}
