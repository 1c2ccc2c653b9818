package usecase

import (
	"context"
)

// CommentSyncUsecase keeps the open thread's comment list reconciled
// against its remote change feed. At most one thread subscription is live
// at a time.
type CommentSyncUsecase interface {
	// Open subscribes to the thread identified by the location path
	// (for example "/post/ab12cd"), tearing down any prior subscription
	// first. Paths that name no thread are a no-op.
	Open(ctx context.Context, locationPath string) error

	// Close tears down the current subscription, if any.
	Close()
}

// PostSyncUsecase patches scalar post fields into the mirrored page from
// per-document feeds. Subscriptions persist for the page's lifetime.
type PostSyncUsecase interface {
	// Start subscribes every post element present in the page.
	Start(ctx context.Context) error
}

// AlertUsecase listens to the current identity's unread notification inbox,
// toasting each new alert and marking it read best-effort. It re-subscribes
// whenever the identity changes.
type AlertUsecase interface {
	Start(ctx context.Context)
}

// FallbackUsecase consumes the server-sent fallback stream when the primary
// real-time channel is unavailable and re-emits equivalent queue events and
// like-count patches.
type FallbackUsecase interface {
	// Run blocks until the context is canceled.
	Run(ctx context.Context) error
}
