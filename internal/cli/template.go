package cli

const usageTemplate = `ClientDesk - client and reminder management

Usage:
  clientdesk [OPTIONS] COMMAND

Options:
  --version        Show version information
  --db PATH        Path to local database (default: clientdesk.db, env CLIENTDESK_DB)
  --log-level LVL  Log level: debug, info, warn, error (env CLIENTDESK_LOG_LEVEL)

Commands:
  register                 Create a new account
  login                    Log in and start a session
  logout                   End the current session
  status                   Show session status
  client add               Add a client
  client list              List clients (--search TEXT, --priority low|medium|high)
  client get <id>          Show full client details
  client edit <id>         Edit a client (only answered fields change)
  client delete <id>       Delete a client (asks for confirmation)
  reminder add             Add a reminder
  reminder list            List active reminders (--sort date|priority)
  reminder get <id>        Show full reminder details
  reminder edit <id>       Edit a reminder (only answered fields change)
  reminder delete <id>     Delete a reminder (asks for confirmation)
  reminder toggle <id>     Toggle a reminder between pending and completed
  dashboard                Overview: stats, upcoming and active reminders
  calendar [YYYY-MM]       Month view with reminder counts per day
  export [-o FILE]         Export incomplete reminders as an iCalendar file
  watch                    Run the desktop-notification watcher until interrupted
  theme [dark|light|toggle]  Show or change the dark-mode preference

Examples:
  clientdesk login
  clientdesk client add
  clientdesk client list --priority high
  clientdesk reminder list --sort priority
  clientdesk calendar 2026-09
  clientdesk export -o client-reminders.ics
`

const clientDetailTemplate = `
=== Client Details ===

Name:     {{.FullName}}
ID:       {{.ID}}
Priority: {{.Priority}}
{{- if .Email}}
Email:    {{.Email}}
{{- end}}
{{- if .Phone}}
Phone:    {{.Phone}}
{{- end}}
{{- if .Address}}
Address:  {{.Address}}
{{- end}}
{{- if .Notes}}
Notes:    {{.Notes}}
{{- end}}
Created:  {{.CreatedAt.Format "2006-01-02 15:04"}}
Updated:  {{.UpdatedAt.Format "2006-01-02 15:04"}}
`

const reminderDetailTemplate = `
=== Reminder Details ===

Title:    {{.Reminder.Title}}
ID:       {{.Reminder.ID}}
When:     {{.Reminder.Date}} {{.Reminder.Time}}
Client:   {{.ClientLabel}}
Status:   {{if .Reminder.Completed}}completed{{else}}pending{{end}}
{{- if .Reminder.Notes}}
Notes:    {{.Reminder.Notes}}
{{- end}}
Created:  {{.Reminder.CreatedAt.Format "2006-01-02 15:04"}}
Updated:  {{.Reminder.UpdatedAt.Format "2006-01-02 15:04"}}
`
