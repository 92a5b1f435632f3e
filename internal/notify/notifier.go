package notify

import "github.com/gen2brain/beeep"

//go:generate moq -out notifier_mock.go . Notifier

// Notifier delivers a single notification to the user. The tag identifies
// the reminder so implementations that support it can collapse re-fires of
// the same notification.
type Notifier interface {
	Notify(title, body, tag string) error
}

// Desktop delivers notifications through the host notification daemon.
// The one-time permission grant, where the platform requires one, is owned
// by the daemon.
type Desktop struct{}

// NewDesktop creates a desktop notifier
func NewDesktop() *Desktop {
	return &Desktop{}
}

// Notify shows a desktop notification. The tag is not forwarded: the host
// daemons beeep talks to have no cross-platform tagging support, so
// deduplication happens in the watcher instead.
func (d *Desktop) Notify(title, body, tag string) error {
	return beeep.Notify(title, body, "")
}
