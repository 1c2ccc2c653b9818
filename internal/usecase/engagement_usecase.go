package usecase

import (
	"context"
)

// EngagementUsecase performs the user's like and share gestures against the
// board server, tagging each request with the current identity.
type EngagementUsecase interface {
	// Like toggles the like on a post and patches the mirrored like count
	// and button state from the server's answer.
	Like(ctx context.Context, postID string) error

	// Share toasts the copied-link confirmation and best-effort pings the
	// server so the owner is notified. The server response is ignored.
	Share(ctx context.Context, postID, link string) error
}
