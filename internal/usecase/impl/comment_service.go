package impl

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"regexp"
	"sync"

	"menfes/internal/domain/entity"
	"menfes/internal/domain/service"
	"menfes/internal/errors"
	"menfes/internal/usecase"
	"menfes/internal/view"

	"github.com/PuerkitoBio/goquery"
)

// threadPathRE extracts the post ID from a thread location path.
var threadPathRE = regexp.MustCompile(`^/post/([a-f0-9]+)$`)

type commentSyncService struct {
	source service.RealtimeSource
	doc    *view.Document
	enrich usecase.EnrichUsecase
	logger *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewCommentSyncService creates the comment-list reconciler. A nil source
// disables it; the fallback stream covers comment activity then.
func NewCommentSyncService(source service.RealtimeSource, doc *view.Document, enrich usecase.EnrichUsecase, logger *slog.Logger) usecase.CommentSyncUsecase {
	return &commentSyncService{
		source: source,
		doc:    doc,
		enrich: enrich,
		logger: logger,
	}
}

func (s *commentSyncService) Open(ctx context.Context, locationPath string) error {
	if s.source == nil {
		return nil
	}
	m := threadPathRE.FindStringSubmatch(locationPath)
	if m == nil {
		return nil
	}
	postID := m[1]

	s.Close()

	// Comments already rendered by the server count as seen; the feed's
	// initial snapshot re-delivers them as additions.
	seen := map[string]struct{}{}
	s.doc.Update(func(doc *goquery.Document) {
		doc.Find("li.comment-item").Each(func(_ int, item *goquery.Selection) {
			if id, ok := item.Attr("data-id"); ok && id != "" {
				seen[id] = struct{}{}
			}
		})
	})

	subCtx, cancel := context.WithCancel(ctx)
	ch, err := s.source.CommentChanges(subCtx, postID)
	if err != nil {
		cancel()

		return errors.Wrap(err, "subscribe comment feed")
	}

	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	go s.consume(subCtx, ch, seen)

	return nil
}

func (s *commentSyncService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *commentSyncService) consume(ctx context.Context, ch <-chan service.Change, seen map[string]struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-ch:
			if !ok {
				return
			}
			if ctx.Err() != nil {
				return
			}
			s.apply(change, seen)
		}
	}
}

func (s *commentSyncService) apply(change service.Change, seen map[string]struct{}) {
	switch change.Kind {
	case service.ChangeAdded:
		if _, dup := seen[change.Doc.ID]; dup {
			return
		}
		seen[change.Doc.ID] = struct{}{}
		s.append(entity.CommentFromDoc(change.Doc.ID, change.Doc.Data))
	case service.ChangeModified:
		s.update(entity.CommentFromDoc(change.Doc.ID, change.Doc.Data))
	case service.ChangeRemoved:
		delete(seen, change.Doc.ID)
		s.remove(change.Doc.ID)
	}
}

func (s *commentSyncService) append(rec entity.CommentRecord) {
	s.doc.Update(func(doc *goquery.Document) {
		list := doc.Find(".comment-list").First()
		if list.Length() == 0 {
			return
		}
		list.AppendHtml(renderComment(rec))
		item := doc.Find(fmt.Sprintf(`li.comment-item[data-id=%q]`, rec.ID)).First()
		if s.enrich != nil {
			s.enrich.DecorateComment(item)
		}
	})
}

func (s *commentSyncService) update(rec entity.CommentRecord) {
	s.doc.Update(func(doc *goquery.Document) {
		item := doc.Find(fmt.Sprintf(`li.comment-item[data-id=%q]`, rec.ID)).First()
		if item.Length() == 0 {
			return
		}
		// Only the text may change; the metadata row stays as rendered.
		item.Find(".comment-text").SetHtml(html.EscapeString(rec.Text))
		if s.enrich != nil {
			s.enrich.DecorateComment(item)
		}
	})
}

func (s *commentSyncService) remove(id string) {
	s.doc.Update(func(doc *goquery.Document) {
		doc.Find(fmt.Sprintf(`li.comment-item[data-id=%q]`, id)).Remove()
	})
}

func renderComment(rec entity.CommentRecord) string {
	classes := "comment-item"
	if rec.ByAdmin {
		classes += " comment-admin"
	}

	meta := ""
	if rec.ByAdmin {
		meta = `<span class="badge-admin">Admin</span> · `
	}
	meta += fmt.Sprintf(`<span class="comment-time">%s</span>`, entity.FormatWIB(rec.CreatedAt))

	return fmt.Sprintf(
		`<li class=%q data-id=%q data-author-uid=%q><div class="comment-text">%s</div><div class="comment-meta">%s</div></li>`,
		classes, rec.ID, rec.AuthorUID, html.EscapeString(rec.Text), meta,
	)
}
