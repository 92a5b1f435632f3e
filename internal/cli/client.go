package cli

import (
	"context"
	"flag"
	"fmt"
	"text/template"

	"clientdesk/internal/domain"
	"clientdesk/internal/models"
	"clientdesk/internal/validation"
)

var clientUsage = "Usage: clientdesk client <add|list|get|edit|delete> [args]"

func (c *Cli) runClient(ctx context.Context, args []string) error {
	if err := c.requireUser(ctx); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. %s", clientUsage)
	}

	switch args[0] {
	case "add":
		return c.runClientAdd(ctx)
	case "list":
		return c.runClientList(ctx, args[1:])
	case "get":
		return c.runClientGet(ctx, args[1:])
	case "edit":
		return c.runClientEdit(ctx, args[1:])
	case "delete":
		return c.runClientDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown subcommand: %s. %s", args[0], clientUsage)
	}
}

// readPriority prompts for a priority level, returning the fallback on
// empty input
func (c *Cli) readPriority(prompt string, fallback models.Priority) (models.Priority, error) {
	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read priority: %w", err)
	}
	if input == "" {
		return fallback, nil
	}
	p := models.Priority(input)
	if err := validation.ValidatePriority(p); err != nil {
		return "", err
	}
	return p, nil
}

func (c *Cli) runClientAdd(ctx context.Context) error {
	c.io.Println("=== Add Client ===")
	c.io.Println()

	fullName, err := c.io.ReadInput("Full name: ")
	if err != nil {
		return fmt.Errorf("failed to read full name: %w", err)
	}
	if fullName == "" {
		return fmt.Errorf("full name cannot be empty")
	}

	email, err := c.io.ReadInput("Email (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	phone, err := c.io.ReadInput("Phone (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read phone: %w", err)
	}

	address, err := c.io.ReadInput("Address (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read address: %w", err)
	}

	notes, err := c.io.ReadInput("Notes (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	}

	priority, err := c.readPriority("Priority (low/medium/high, default medium): ", models.PriorityMedium)
	if err != nil {
		return err
	}

	client, err := c.domain.SaveClient(ctx, "", domain.ClientPatch{
		FullName: &fullName,
		Email:    &email,
		Phone:    &phone,
		Address:  &address,
		Notes:    &notes,
		Priority: &priority,
	})
	if err != nil {
		return fmt.Errorf("failed to add client: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Client added!")
	c.io.Printf("ID: %s\n", client.ID)

	return nil
}

func (c *Cli) runClientList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("client list", flag.ContinueOnError)
	search := fs.String("search", "", "substring match on name or email")
	priority := fs.String("priority", "all", "filter: all, low, medium or high")
	if err := fs.Parse(args); err != nil {
		return err
	}

	state, err := c.state.LoadState(ctx)
	if err != nil {
		return err
	}

	clients := domain.FilterClients(state, *search, *priority)

	c.io.Println("=== Clients ===")
	c.io.Println()

	if len(clients) == 0 {
		c.io.Println("No clients found.")
		c.io.Println()
		c.io.Println("Use 'clientdesk client add' to add your first client.")
		return nil
	}

	c.io.Printf("Found %d client(s):\n", len(clients))
	c.io.Println()

	for i, client := range clients {
		c.io.Printf("%d. %s [%s]\n", i+1, client.FullName, client.Priority)
		c.io.Printf("   ID:    %s\n", client.ID)
		if client.Email != "" {
			c.io.Printf("   Email: %s\n", client.Email)
		}
		if client.Phone != "" {
			c.io.Printf("   Phone: %s\n", client.Phone)
		}
		c.io.Println()
	}

	return nil
}

func (c *Cli) runClientGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing client ID. Usage: clientdesk client get <id>")
	}

	state, err := c.state.LoadState(ctx)
	if err != nil {
		return err
	}

	client, ok := domain.FindClient(state, args[0])
	if !ok {
		return fmt.Errorf("client not found with ID: %s", args[0])
	}

	tmpl := template.Must(template.New("client").Parse(clientDetailTemplate))
	return tmpl.Execute(c.io, client)
}

func (c *Cli) runClientEdit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing client ID. Usage: clientdesk client edit <id>")
	}

	state, err := c.state.LoadState(ctx)
	if err != nil {
		return err
	}

	existing, ok := domain.FindClient(state, args[0])
	if !ok {
		return fmt.Errorf("client not found with ID: %s", args[0])
	}

	c.io.Println("=== Edit Client ===")
	c.io.Println()
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	patch := domain.ClientPatch{}

	if v, err := c.io.ReadInput(fmt.Sprintf("Full name [%s]: ", existing.FullName)); err != nil {
		return fmt.Errorf("failed to read full name: %w", err)
	} else if v != "" {
		patch.FullName = &v
	}

	if v, err := c.io.ReadInput(fmt.Sprintf("Email [%s]: ", existing.Email)); err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	} else if v != "" {
		patch.Email = &v
	}

	if v, err := c.io.ReadInput(fmt.Sprintf("Phone [%s]: ", existing.Phone)); err != nil {
		return fmt.Errorf("failed to read phone: %w", err)
	} else if v != "" {
		patch.Phone = &v
	}

	if v, err := c.io.ReadInput(fmt.Sprintf("Address [%s]: ", existing.Address)); err != nil {
		return fmt.Errorf("failed to read address: %w", err)
	} else if v != "" {
		patch.Address = &v
	}

	if v, err := c.io.ReadInput(fmt.Sprintf("Notes [%s]: ", existing.Notes)); err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	} else if v != "" {
		patch.Notes = &v
	}

	priority, err := c.readPriority(fmt.Sprintf("Priority [%s]: ", existing.Priority), existing.Priority)
	if err != nil {
		return err
	}
	if priority != existing.Priority {
		patch.Priority = &priority
	}

	updated, err := c.domain.SaveClient(ctx, existing.ID, patch)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Client updated!")
	c.io.Printf("Name: %s\n", updated.FullName)

	return nil
}

func (c *Cli) runClientDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing client ID. Usage: clientdesk client delete <id>")
	}

	state, err := c.state.LoadState(ctx)
	if err != nil {
		return err
	}

	client, ok := domain.FindClient(state, args[0])
	if !ok {
		return fmt.Errorf("client not found with ID: %s", args[0])
	}

	linked := 0
	for _, r := range state.Reminders {
		if r.ClientID == client.ID {
			linked++
		}
	}

	c.io.Println("=== Delete Client ===")
	c.io.Println()
	c.io.Println("About to delete:")
	c.io.Printf("  Name:     %s\n", client.FullName)
	c.io.Printf("  Priority: %s\n", client.Priority)
	if linked > 0 {
		c.io.Printf("  %d reminder(s) will be unlinked from this client\n", linked)
	}
	c.io.Println()

	ok, err = c.confirm("Are you sure you want to delete this client? (yes/no): ")
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.domain.DeleteClient(ctx, client.ID); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	c.io.Println("✓ Client deleted")
	return nil
}
