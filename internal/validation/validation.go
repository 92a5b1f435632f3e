package validation

import (
	"fmt"
	"regexp"
	"time"

	"clientdesk/internal/models"
)

// UsernamePattern defines the accepted username format:
// latin letters (a-z, A-Z), digits (0-9) and underscore (_), 3-32 characters
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

const (
	// MinUsernameLen is the minimum username length
	MinUsernameLen = 3
	// MaxUsernameLen is the maximum username length
	MaxUsernameLen = 32
)

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// ValidateUsername checks that username matches the accepted format
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}

	return nil
}

// ValidatePassword checks the minimum requirements for an account password
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	return nil
}

// ValidatePriority checks that the value is one of low, medium, high
func ValidatePriority(p models.Priority) error {
	if !p.Valid() {
		return fmt.Errorf("priority must be one of: low, medium, high")
	}
	return nil
}

// ValidateDate checks a calendar date in YYYY-MM-DD form
func ValidateDate(date string) error {
	if date == "" {
		return fmt.Errorf("date cannot be empty")
	}
	if !datePattern.MatchString(date) {
		return fmt.Errorf("date must be in YYYY-MM-DD format")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid calendar date: %s", date)
	}
	return nil
}

// ValidateTime checks a wall-clock time in 24h HH:MM form
func ValidateTime(t string) error {
	if t == "" {
		return fmt.Errorf("time cannot be empty")
	}
	if !timePattern.MatchString(t) {
		return fmt.Errorf("time must be in HH:MM format")
	}
	return nil
}
