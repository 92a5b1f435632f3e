package cli

import (
	"context"
	"fmt"
)

// runTheme shows or changes the dark-mode preference. The flag is read
// once here and written back only on an explicit change; nothing else
// touches it.
func (c *Cli) runTheme(ctx context.Context, args []string) error {
	enabled, err := c.settings.DarkMode(ctx)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		if enabled {
			c.io.Println("Theme: dark")
		} else {
			c.io.Println("Theme: light")
		}
		return nil
	}

	switch args[0] {
	case "dark":
		enabled = true
	case "light":
		enabled = false
	case "toggle":
		enabled = !enabled
	default:
		return fmt.Errorf("unknown theme: %s. Use: dark, light or toggle", args[0])
	}

	if err := c.settings.SetDarkMode(ctx, enabled); err != nil {
		return err
	}

	if enabled {
		c.io.Println("✓ Theme set to dark")
	} else {
		c.io.Println("✓ Theme set to light")
	}
	return nil
}
