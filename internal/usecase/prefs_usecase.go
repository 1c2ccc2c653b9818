package usecase

import (
	"context"
)

// Draft is the composer form state persisted between visits.
type Draft struct {
	Name    string `json:"name"`
	To      string `json:"to"`
	Mood    string `json:"mood"`
	Content string `json:"content"`
}

// PrefsUsecase manages the locally persisted preferences: theme, display
// name and the composer draft. All storage access is best-effort; failures
// degrade to defaults.
type PrefsUsecase interface {
	// Theme returns the active theme, "light" unless "dark" was chosen.
	Theme(ctx context.Context) string

	// ToggleTheme flips the theme, persists it and patches the body class.
	ToggleTheme(ctx context.Context) string

	// DisplayName returns the remembered name, defaulting to "Anon".
	DisplayName(ctx context.Context) string

	// RememberName persists the display name used on outbound shares.
	RememberName(ctx context.Context, name string)

	// Draft loads the persisted composer draft, empty when absent.
	Draft(ctx context.Context) Draft

	// SaveDraft persists the draft and toasts a confirmation.
	SaveDraft(ctx context.Context, draft Draft)

	// ClearDraft removes the draft and toasts a confirmation.
	ClearDraft(ctx context.Context)
}
