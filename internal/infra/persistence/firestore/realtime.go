package firestore

import (
	"context"
	"log/slog"

	"menfes/internal/domain/service"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// alertWindow caps the unread inbox feed.
const alertWindow = 20

type realtimeSource struct {
	client *fs.Client
	logger *slog.Logger
}

// NewRealtimeSource wraps the Firestore client as the real-time change-feed
// source. A nil client yields a nil source, which disables the primary
// channel.
func NewRealtimeSource(client *fs.Client, logger *slog.Logger) service.RealtimeSource {
	if client == nil {
		return nil
	}

	return &realtimeSource{client: client, logger: logger}
}

// CommentChanges subscribes to one thread's comment feed, ordered by
// creation time ascending so feed order matches append order.
func (s *realtimeSource) CommentChanges(ctx context.Context, postID string) (<-chan service.Change, error) {
	query := s.client.Collection("posts").Doc(postID).Collection("comments").
		OrderBy("created_at", fs.Asc)

	return s.pumpChanges(ctx, query.Snapshots(ctx), "comments"), nil
}

// AlertChanges subscribes to one identity's unread notification inbox.
func (s *realtimeSource) AlertChanges(ctx context.Context, uid string) (<-chan service.Change, error) {
	query := s.client.Collection("notifications").
		Where("receiver_uid", "==", uid).
		Where("read", "==", false).
		OrderBy("created_at", fs.Desc).
		Limit(alertWindow)

	return s.pumpChanges(ctx, query.Snapshots(ctx), "notifications"), nil
}

// PostSnapshots subscribes to one post's document feed.
func (s *realtimeSource) PostSnapshots(ctx context.Context, postID string) (<-chan service.Document, error) {
	iter := s.client.Collection("posts").Doc(postID).Snapshots(ctx)
	out := make(chan service.Document, 16)

	go func() {
		defer close(out)
		defer iter.Stop()

		for {
			snap, err := iter.Next()
			if err != nil {
				s.logStreamEnd("posts", err)

				return
			}

			doc := service.Document{ID: snap.Ref.ID, Data: map[string]any{}}
			if snap.Exists() {
				doc.Data = snap.Data()
			}

			select {
			case out <- doc:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// MarkAlertRead flags an inbox document as read. Merge write so concurrent
// field updates on the document survive.
func (s *realtimeSource) MarkAlertRead(ctx context.Context, alertID string) error {
	_, err := s.client.Collection("notifications").Doc(alertID).
		Set(ctx, map[string]any{"read": true}, fs.MergeAll)

	return err
}

// pumpChanges forwards query snapshot changes onto a channel until the
// context is canceled or the stream fails.
func (s *realtimeSource) pumpChanges(ctx context.Context, iter *fs.QuerySnapshotIterator, feed string) <-chan service.Change {
	out := make(chan service.Change, 16)

	go func() {
		defer close(out)
		defer iter.Stop()

		for {
			snap, err := iter.Next()
			if err != nil {
				s.logStreamEnd(feed, err)

				return
			}

			for _, change := range snap.Changes {
				event := service.Change{
					Kind: mapChangeKind(change.Kind),
					Doc:  service.Document{ID: change.Doc.Ref.ID, Data: change.Doc.Data()},
				}

				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

func (s *realtimeSource) logStreamEnd(feed string, err error) {
	if status.Code(err) == codes.Canceled {
		return
	}
	s.logger.Warn("change feed ended", slog.String("feed", feed), slog.Any("error", err))
}

func mapChangeKind(kind fs.DocumentChangeKind) service.ChangeKind {
	switch kind {
	case fs.DocumentModified:
		return service.ChangeModified
	case fs.DocumentRemoved:
		return service.ChangeRemoved
	default:
		return service.ChangeAdded
	}
}
