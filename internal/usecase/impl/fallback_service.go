package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"menfes/internal/domain/entity"
	"menfes/internal/domain/service"
	"menfes/internal/usecase"
	"menfes/internal/view"

	"github.com/PuerkitoBio/goquery"
)

const (
	newCommentMessage = "Komentar baru masuk"
	newPostMessage    = "Menfess baru terkirim"
)

type fallbackService struct {
	source service.RealtimeSource
	stream service.EventStream
	toasts usecase.ToastUsecase
	doc    *view.Document
	logger *slog.Logger
}

// NewFallbackService creates the server-sent fallback consumer. It only
// activates when the primary real-time source is absent.
func NewFallbackService(
	source service.RealtimeSource,
	stream service.EventStream,
	toasts usecase.ToastUsecase,
	doc *view.Document,
	logger *slog.Logger,
) usecase.FallbackUsecase {
	return &fallbackService{
		source: source,
		stream: stream,
		toasts: toasts,
		doc:    doc,
		logger: logger,
	}
}

func (s *fallbackService) Run(ctx context.Context) error {
	if s.source != nil || s.stream == nil {
		return nil
	}

	s.logger.Info("primary real-time channel unavailable, consuming fallback stream")

	ch := s.stream.Listen(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			s.handle(ev)
		}
	}
}

func (s *fallbackService) handle(ev service.StreamEvent) {
	switch ev.Name {
	case "like":
		var payload struct {
			PostID string `json:"post_id"`
			Likes  *int64 `json:"likes"`
		}
		// Malformed or partial payloads are dropped rather than patched.
		if err := json.Unmarshal([]byte(ev.Data), &payload); err != nil {
			s.logger.Debug("skip malformed like event", slog.Any("error", err))

			return
		}
		if payload.PostID == "" || payload.Likes == nil {
			return
		}
		s.doc.Update(func(doc *goquery.Document) {
			doc.Find(fmt.Sprintf("#post-%s", payload.PostID)).
				Find(".like-count").
				SetText(strconv.FormatInt(*payload.Likes, 10))
		})
	case "comment":
		s.toasts.Enqueue(entity.NotificationRequest{
			Kind:    entity.KindComment,
			Message: newCommentMessage,
		})
	case "post":
		s.toasts.Enqueue(entity.NotificationRequest{
			Kind:    entity.KindInfo,
			Message: newPostMessage,
		})
	}
}
