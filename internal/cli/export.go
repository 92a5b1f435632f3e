package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"clientdesk/internal/ical"
)

func (c *Cli) runExport(ctx context.Context, args []string) error {
	if err := c.requireUser(ctx); err != nil {
		return err
	}

	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	output := fs.String("o", "", "output file (default: "+ical.DefaultFilename+", \"-\" for stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	state, err := c.state.LoadState(ctx)
	if err != nil {
		return err
	}

	document := ical.Export(state)

	if *output == "-" {
		if _, err := c.io.Write(document); err != nil {
			return fmt.Errorf("failed to write calendar: %w", err)
		}
		c.io.Println()
		return nil
	}

	filename := *output
	if filename == "" {
		filename = ical.DefaultFilename
	}

	if err := os.WriteFile(filename, document, 0644); err != nil {
		return fmt.Errorf("failed to write calendar file: %w", err)
	}

	c.io.Printf("✓ Exported calendar to %s\n", filename)
	return nil
}
