// Package usecase defines the application's use case interfaces.
package usecase

// IdentityUsecase resolves the current actor identity. Current never fails
// and never blocks: with no authenticated identity it returns (creating and
// persisting on first use) a generated per-browser identity, stable for the
// whole session until an authenticated identity supersedes it.
type IdentityUsecase interface {
	// Current returns the identity every outbound request is tagged with.
	Current() string

	// SetAuthenticated replaces the generated identity once sign-in
	// completes, and notifies subscribers.
	SetAuthenticated(uid string)

	// OnChange registers a subscriber invoked whenever the current
	// identity changes.
	OnChange(fn func(uid string))
}
