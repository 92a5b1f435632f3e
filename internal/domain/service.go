package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clientdesk/internal/auth"
	"clientdesk/internal/models"
	"clientdesk/internal/storage"
	"clientdesk/internal/validation"
)

var (
	// ErrClientNotFound indicates that no client has the given id
	ErrClientNotFound = errors.New("client not found")

	// ErrReminderNotFound indicates that no reminder has the given id
	ErrReminderNotFound = errors.New("reminder not found")
)

// Service applies domain operations to the application state. Every
// operation follows the same shape: load the current state, compute a new
// value without aliasing the old slices, save the whole document back.
type Service struct {
	state storage.StateStorage
}

// NewService creates a new domain service
func NewService(state storage.StateStorage) *Service {
	return &Service{state: state}
}

// ClientPatch carries the client fields supplied by the caller. Nil fields
// are left untouched on update; on create they fall back to zero values
// (priority defaults to medium).
type ClientPatch struct {
	FullName *string
	Email    *string
	Phone    *string
	Address  *string
	Notes    *string
	Priority *models.Priority
}

// ReminderPatch carries the reminder fields supplied by the caller.
// Completion state is never set through a patch: new reminders always start
// pending, existing ones change only via ToggleReminder.
type ReminderPatch struct {
	Title    *string
	Date     *string
	Time     *string
	Notes    *string
	ClientID *string
}

// SaveClient upserts a client. With an empty id a new client is appended
// with a generated id and createdAt == updatedAt; otherwise the matching
// client is shallow-merged with the patch and updatedAt is refreshed.
func (s *Service) SaveClient(ctx context.Context, id string, patch ClientPatch) (*models.Client, error) {
	if patch.Priority != nil {
		if err := validation.ValidatePriority(*patch.Priority); err != nil {
			return nil, err
		}
	}

	state, err := s.state.LoadState(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	if id == "" {
		if patch.FullName == nil || *patch.FullName == "" {
			return nil, fmt.Errorf("client full name cannot be empty")
		}

		client := models.Client{
			ID:        auth.GenerateID(),
			FullName:  *patch.FullName,
			Priority:  models.PriorityMedium,
			CreatedAt: now,
			UpdatedAt: now,
		}
		applyClientPatch(&client, patch)

		clients := make([]models.Client, 0, len(state.Clients)+1)
		clients = append(clients, state.Clients...)
		clients = append(clients, client)
		state.Clients = clients

		if err := s.state.SaveState(ctx, state); err != nil {
			return nil, err
		}
		return &client, nil
	}

	clients := make([]models.Client, len(state.Clients))
	copy(clients, state.Clients)

	var updated *models.Client
	for i := range clients {
		if clients[i].ID == id {
			applyClientPatch(&clients[i], patch)
			clients[i].UpdatedAt = now
			updated = &clients[i]
			break
		}
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: %s", ErrClientNotFound, id)
	}

	state.Clients = clients
	if err := s.state.SaveState(ctx, state); err != nil {
		return nil, err
	}

	result := *updated
	return &result, nil
}

func applyClientPatch(c *models.Client, patch ClientPatch) {
	if patch.FullName != nil {
		c.FullName = *patch.FullName
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Address != nil {
		c.Address = *patch.Address
	}
	if patch.Notes != nil {
		c.Notes = *patch.Notes
	}
	if patch.Priority != nil {
		c.Priority = *patch.Priority
	}
}

// DeleteClient removes a client and clears the weak reference on every
// reminder that pointed at it, in the same store transaction. Deleting an
// unknown id is a silent no-op.
func (s *Service) DeleteClient(ctx context.Context, id string) error {
	state, err := s.state.LoadState(ctx)
	if err != nil {
		return err
	}

	clients := make([]models.Client, 0, len(state.Clients))
	for _, c := range state.Clients {
		if c.ID != id {
			clients = append(clients, c)
		}
	}

	reminders := make([]models.Reminder, len(state.Reminders))
	copy(reminders, state.Reminders)
	for i := range reminders {
		if reminders[i].ClientID == id {
			reminders[i].ClientID = ""
		}
	}

	state.Clients = clients
	state.Reminders = reminders
	return s.state.SaveState(ctx, state)
}

// SaveReminder upserts a reminder, symmetric to SaveClient. New reminders
// always start with completed=false regardless of caller input.
func (s *Service) SaveReminder(ctx context.Context, id string, patch ReminderPatch) (*models.Reminder, error) {
	if patch.Date != nil {
		if err := validation.ValidateDate(*patch.Date); err != nil {
			return nil, err
		}
	}
	if patch.Time != nil {
		if err := validation.ValidateTime(*patch.Time); err != nil {
			return nil, err
		}
	}

	state, err := s.state.LoadState(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	if id == "" {
		if patch.Title == nil || *patch.Title == "" {
			return nil, fmt.Errorf("reminder title cannot be empty")
		}
		if patch.Date == nil {
			return nil, fmt.Errorf("reminder date cannot be empty")
		}
		if patch.Time == nil {
			return nil, fmt.Errorf("reminder time cannot be empty")
		}

		reminder := models.Reminder{
			ID:        auth.GenerateID(),
			Completed: false,
			CreatedAt: now,
			UpdatedAt: now,
		}
		applyReminderPatch(&reminder, patch)

		reminders := make([]models.Reminder, 0, len(state.Reminders)+1)
		reminders = append(reminders, state.Reminders...)
		reminders = append(reminders, reminder)
		state.Reminders = reminders

		if err := s.state.SaveState(ctx, state); err != nil {
			return nil, err
		}
		return &reminder, nil
	}

	reminders := make([]models.Reminder, len(state.Reminders))
	copy(reminders, state.Reminders)

	var updated *models.Reminder
	for i := range reminders {
		if reminders[i].ID == id {
			applyReminderPatch(&reminders[i], patch)
			reminders[i].UpdatedAt = now
			updated = &reminders[i]
			break
		}
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: %s", ErrReminderNotFound, id)
	}

	state.Reminders = reminders
	if err := s.state.SaveState(ctx, state); err != nil {
		return nil, err
	}

	result := *updated
	return &result, nil
}

func applyReminderPatch(r *models.Reminder, patch ReminderPatch) {
	if patch.Title != nil {
		r.Title = *patch.Title
	}
	if patch.Date != nil {
		r.Date = *patch.Date
	}
	if patch.Time != nil {
		r.Time = *patch.Time
	}
	if patch.Notes != nil {
		r.Notes = *patch.Notes
	}
	if patch.ClientID != nil {
		r.ClientID = *patch.ClientID
	}
}

// DeleteReminder removes a reminder by id. Deleting an unknown id is a
// silent no-op.
func (s *Service) DeleteReminder(ctx context.Context, id string) error {
	state, err := s.state.LoadState(ctx)
	if err != nil {
		return err
	}

	reminders := make([]models.Reminder, 0, len(state.Reminders))
	for _, r := range state.Reminders {
		if r.ID != id {
			reminders = append(reminders, r)
		}
	}

	state.Reminders = reminders
	return s.state.SaveState(ctx, state)
}

// ToggleReminder flips the completion flag and refreshes updatedAt
func (s *Service) ToggleReminder(ctx context.Context, id string) (*models.Reminder, error) {
	state, err := s.state.LoadState(ctx)
	if err != nil {
		return nil, err
	}

	reminders := make([]models.Reminder, len(state.Reminders))
	copy(reminders, state.Reminders)

	var toggled *models.Reminder
	for i := range reminders {
		if reminders[i].ID == id {
			reminders[i].Completed = !reminders[i].Completed
			reminders[i].UpdatedAt = time.Now()
			toggled = &reminders[i]
			break
		}
	}
	if toggled == nil {
		return nil, fmt.Errorf("%w: %s", ErrReminderNotFound, id)
	}

	state.Reminders = reminders
	if err := s.state.SaveState(ctx, state); err != nil {
		return nil, err
	}

	result := *toggled
	return &result, nil
}
