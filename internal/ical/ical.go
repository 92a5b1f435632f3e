// Package ical renders the incomplete reminders as an iCalendar document
// for interoperability with external calendar readers. The output grammar
// is fixed: property order, line endings and the PRODID are all part of the
// interchange contract and must not drift.
package ical

import (
	"strings"
	"time"

	"clientdesk/internal/domain"
	"clientdesk/internal/models"
)

const (
	uidDomain = "clientmanagement.app"
	prodID    = "-//Client Management App//EN"
)

// DefaultFilename is the suggested name for an exported calendar file
const DefaultFilename = "client-reminders.ics"

// Export renders every incomplete reminder as a one-hour VEVENT. Reminders
// whose date or time does not parse are skipped: they cannot produce a
// valid DTSTART. Lines are CRLF-joined with no trailing newline.
func Export(state *models.AppState) []byte {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
	}

	for _, r := range state.Reminders {
		if r.Completed {
			continue
		}
		start, ok := r.At()
		if !ok {
			continue
		}
		end := start.Add(time.Hour)

		clientName := "No client assigned"
		location := ""
		if c, found := domain.FindClient(state, r.ClientID); found {
			clientName = c.FullName
			location = c.Address
		}

		description := "Client: " + clientName
		if r.Notes != "" {
			description += `\n\nNotes: ` + r.Notes
		}

		lines = append(lines,
			"BEGIN:VEVENT",
			"UID:"+r.ID+"@"+uidDomain,
			"DTSTART:"+formatUTC(start),
			"DTEND:"+formatUTC(end),
			"SUMMARY:"+r.Title,
			"DESCRIPTION:"+description,
			"LOCATION:"+location,
			"CREATED:"+formatUTC(r.CreatedAt),
			"LAST-MODIFIED:"+formatUTC(r.UpdatedAt),
			"END:VEVENT",
		)
	}

	lines = append(lines, "END:VCALENDAR")

	return []byte(strings.Join(lines, "\r\n"))
}

// formatUTC renders a timestamp in the compact UTC form YYYYMMDDThhmmssZ
func formatUTC(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}
