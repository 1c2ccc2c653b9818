// Package service defines the external-collaborator interfaces of the
// domain layer.
package service

import (
	"context"
)

// ChangeKind is the kind of a change-feed event.
type ChangeKind int

const (
	// ChangeAdded signals a document newly matching the feed query.
	ChangeAdded ChangeKind = iota
	// ChangeModified signals an update to a matching document.
	ChangeModified
	// ChangeRemoved signals a document leaving the feed query.
	ChangeRemoved
)

// Document is one raw document delivered by a feed.
type Document struct {
	ID   string
	Data map[string]any
}

// Change is one change-feed event. Events arrive in the order the remote
// feed emits them; consumers must not re-sort.
type Change struct {
	Kind ChangeKind
	Doc  Document
}

// RealtimeSource is the document database's real-time surface. Every feed
// delivers on the returned channel until the context is canceled or the
// remote stream fails, then closes it. Cancellation of the context is the
// only unsubscribe mechanism.
type RealtimeSource interface {
	// CommentChanges subscribes to the comment feed of one post thread,
	// ordered by creation time ascending.
	CommentChanges(ctx context.Context, postID string) (<-chan Change, error)

	// PostSnapshots subscribes to the document feed of one post.
	PostSnapshots(ctx context.Context, postID string) (<-chan Document, error)

	// AlertChanges subscribes to the unread notification inbox of one
	// identity, newest first, capped at the inbox window size.
	AlertChanges(ctx context.Context, uid string) (<-chan Change, error)

	// MarkAlertRead flags an inbox document as read (merge write).
	MarkAlertRead(ctx context.Context, alertID string) error
}
