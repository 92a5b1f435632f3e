package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clientdesk/internal/models"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid simple", "admin", false},
		{"valid with underscore", "some_user", false},
		{"valid with digits", "user123", false},
		{"valid minimum length", "abc", false},
		{"empty", "", true},
		{"too short", "ab", true},
		{"too long", "a123456789012345678901234567890123", true},
		{"contains space", "some user", true},
		{"contains dash", "some-user", true},
		{"contains unicode", "пользователь", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("admin123"))
	assert.NoError(t, ValidatePassword("x"))
	assert.Error(t, ValidatePassword(""))
}

func TestValidatePriority(t *testing.T) {
	assert.NoError(t, ValidatePriority(models.PriorityLow))
	assert.NoError(t, ValidatePriority(models.PriorityMedium))
	assert.NoError(t, ValidatePriority(models.PriorityHigh))
	assert.Error(t, ValidatePriority(models.Priority("urgent")))
	assert.Error(t, ValidatePriority(models.Priority("")))
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"valid", "2026-01-15", false},
		{"valid leap day", "2024-02-29", false},
		{"empty", "", true},
		{"wrong format", "15.01.2026", true},
		{"missing zero padding", "2026-1-5", true},
		{"month out of range", "2026-13-01", true},
		{"day out of range", "2026-01-32", true},
		{"non-leap february 29", "2025-02-29", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDate(tt.date)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTime(t *testing.T) {
	tests := []struct {
		name    string
		time    string
		wantErr bool
	}{
		{"valid morning", "09:30", false},
		{"valid midnight", "00:00", false},
		{"valid last minute", "23:59", false},
		{"empty", "", true},
		{"hour out of range", "24:00", true},
		{"minute out of range", "12:60", true},
		{"missing zero padding", "9:30", true},
		{"with seconds", "09:30:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTime(tt.time)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
