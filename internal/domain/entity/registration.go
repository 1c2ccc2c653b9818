// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// PushRegistration records one push token registered with the backend. The
// token itself is the durable key: the same token registered twice is an
// upsert, and the locally persisted copy is what a later opt-out deletes by.
type PushRegistration struct {
	Token     string    `json:"token"`
	UID       string    `json:"uid"`        // Identity that owned the browser when the token was obtained.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last (re-)registration.
	UserAgent string    `json:"user_agent"` // Client metadata, informational only.
}
