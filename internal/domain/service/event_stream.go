package service

import (
	"context"
)

// StreamEvent is one named event from the server-sent fallback stream.
type StreamEvent struct {
	Name string
	Data string
}

// EventStream is the long-lived fallback channel. Listen emits events until
// the context is canceled; connection failures are absorbed into the
// stream's own reconnection behavior, never surfaced.
type EventStream interface {
	Listen(ctx context.Context) <-chan StreamEvent
}
