package service

import (
	"time"
)

// ShownNotification is a system notification displayed outside the page, in
// the worker context.
type ShownNotification struct {
	ID        string
	Title     string
	Body      string
	Icon      string
	Badge     string
	Image     string
	TargetURL string // Resolved navigation target for activation.
	Admin     bool
	ShownAt   time.Time
}

// NotificationCenter is the platform's notification tray as seen from the
// worker context.
type NotificationCenter interface {
	// Show displays the notification and returns its assigned ID.
	Show(n ShownNotification) string

	// Get returns a shown notification by ID.
	Get(id string) (ShownNotification, bool)

	// Dismiss removes a shown notification. Unknown IDs are ignored.
	Dismiss(id string)
}

// Window is one open client window of the board.
type Window struct {
	ID  string
	URL string
}

// WindowClients is the worker's view of the open windows: activation of a
// notification focuses an existing window on the target URL or opens a new
// one.
type WindowClients interface {
	List() []Window
	Focus(id, url string) error
	Open(url string) Window
}
