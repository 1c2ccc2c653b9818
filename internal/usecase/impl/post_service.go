package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"menfes/internal/domain/entity"
	"menfes/internal/domain/service"
	"menfes/internal/usecase"
	"menfes/internal/view"

	"github.com/PuerkitoBio/goquery"
)

type postSyncService struct {
	source service.RealtimeSource
	doc    *view.Document
	logger *slog.Logger
}

// NewPostSyncService creates the post-card reconciler. A nil source disables
// it; the fallback stream covers like counts then.
func NewPostSyncService(source service.RealtimeSource, doc *view.Document, logger *slog.Logger) usecase.PostSyncUsecase {
	return &postSyncService{
		source: source,
		doc:    doc,
		logger: logger,
	}
}

func (s *postSyncService) Start(ctx context.Context) error {
	if s.source == nil {
		return nil
	}

	var ids []string
	s.doc.Update(func(doc *goquery.Document) {
		doc.Find(`article.post-card[id^="post-"]`).Each(func(_ int, card *goquery.Selection) {
			id, _ := card.Attr("id")
			if id := strings.TrimPrefix(id, "post-"); id != "" {
				ids = append(ids, id)
			}
		})
	})

	for _, id := range ids {
		ch, err := s.source.PostSnapshots(ctx, id)
		if err != nil {
			s.logger.Warn("subscribe post feed",
				slog.String("post_id", id),
				slog.Any("error", err))

			continue
		}
		go s.watch(ctx, id, ch)
	}

	return nil
}

func (s *postSyncService) watch(ctx context.Context, id string, ch <-chan service.Document) {
	for {
		select {
		case <-ctx.Done():
			return
		case doc, ok := <-ch:
			if !ok {
				return
			}
			s.apply(entity.PostFromDoc(id, doc.Data))
		}
	}
}

// apply patches only the fields the snapshot carries; absent fields leave
// the rendered state alone. Deletion hides the card and is one-directional.
func (s *postSyncService) apply(snap entity.PostSnapshot) {
	s.doc.Update(func(doc *goquery.Document) {
		card := doc.Find(fmt.Sprintf("#post-%s", snap.ID)).First()
		if card.Length() == 0 {
			return
		}
		if snap.Likes != nil {
			card.Find(".like-count").SetText(strconv.FormatInt(*snap.Likes, 10))
		}
		if snap.Mood != "" {
			card.Find(".post-mood").SetText(snap.Mood)
		}
		if snap.Content != "" {
			card.Find(".post-content").SetText(snap.Content)
		}
		if snap.Status == entity.StatusDeleted {
			hideCard(card)
		}
	})
}

// hideCard sets display:none without discarding other inline styles.
func hideCard(card *goquery.Selection) {
	style, _ := card.Attr("style")
	if strings.Contains(style, "display:none") {
		return
	}
	if style != "" && !strings.HasSuffix(strings.TrimSpace(style), ";") {
		style += ";"
	}
	card.SetAttr("style", style+"display:none")
}
