package usecase

import (
	"context"
)

// PushUsecase manages the push registration lifecycle. No operation
// surfaces a hard failure to the user: errors degrade to "notifications
// stay off" and the local state remains authoritative for the UI.
type PushUsecase interface {
	// EnsurePermissionAndToken requests permission when undecided and, if
	// granted, obtains a token and registers it. Denied or dismissed
	// permission is a silent no-op.
	EnsurePermissionAndToken(ctx context.Context) error

	// SaveToken upserts the registration record keyed by the token,
	// persists the token locally and flips the toggle UI on. Idempotent
	// for a repeated token.
	SaveToken(ctx context.Context, token string) error

	// DisableNotifications best-effort deletes the token remotely, then
	// unconditionally clears the local copy and flips the toggle UI off.
	DisableNotifications(ctx context.Context) error

	// Toggle enables or disables notifications depending on whether a
	// token is currently held.
	Toggle(ctx context.Context) error

	// TestPush sends a verification push to the registered token.
	TestPush(ctx context.Context) error
}
