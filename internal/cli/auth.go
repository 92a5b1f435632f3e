package cli

import (
	"context"
	"errors"
	"fmt"

	"clientdesk/internal/auth"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Register ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	firstName, err := c.io.ReadInput("First name: ")
	if err != nil {
		return fmt.Errorf("failed to read first name: %w", err)
	}

	lastName, err := c.io.ReadInput("Last name: ")
	if err != nil {
		return fmt.Errorf("failed to read last name: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirmPassword, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}

	if password != confirmPassword {
		return fmt.Errorf("passwords do not match")
	}

	user, err := c.auth.Register(ctx, username, password, firstName, lastName)
	if err != nil {
		if errors.Is(err, auth.ErrUsernameTaken) {
			return fmt.Errorf("username %q already exists", username)
		}
		return err
	}

	// A fresh account goes straight into a session, like the signup screen
	// always did
	if _, err := c.auth.Login(ctx, username, password); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Account created!")
	c.io.Printf("Username: %s\n", user.Username)
	c.io.Printf("Name:     %s %s\n", user.FirstName, user.LastName)

	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	user, err := c.auth.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return fmt.Errorf("invalid username or password")
		}
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Welcome back, %s %s\n", user.FirstName, user.LastName)

	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.auth.Logout(ctx); err != nil {
		return fmt.Errorf("failed to log out: %w", err)
	}
	c.io.Println("✓ Logged out")
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	user, err := c.auth.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			c.io.Println("Status: Not logged in")
			c.io.Println()
			c.io.Println("Run 'clientdesk login' to start a session.")
			return nil
		}
		return err
	}

	state, err := c.state.LoadState(ctx)
	if err != nil {
		return err
	}

	darkMode, err := c.settings.DarkMode(ctx)
	if err != nil {
		return err
	}

	c.io.Println("Status: Logged in")
	c.io.Printf("User:      %s (%s %s)\n", user.Username, user.FirstName, user.LastName)
	c.io.Printf("Clients:   %d\n", len(state.Clients))
	c.io.Printf("Reminders: %d\n", len(state.Reminders))
	if darkMode {
		c.io.Println("Theme:     dark")
	} else {
		c.io.Println("Theme:     light")
	}

	return nil
}
