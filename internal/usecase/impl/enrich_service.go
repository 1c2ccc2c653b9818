package impl

import (
	"context"
	"html"
	"log/slog"
	"regexp"
	"sync"

	"menfes/internal/domain/repository"
	"menfes/internal/errors"
	"menfes/internal/usecase"

	"github.com/PuerkitoBio/goquery"
)

const roleBadgeHTML = `<span class="badge">BEM UNBIN</span>`

// mentionRE matches @handles in post and comment text.
var mentionRE = regexp.MustCompile(`@([A-Za-z0-9_#]+)`)

type enrichService struct {
	roles  repository.RoleRepository
	logger *slog.Logger

	mu     sync.RWMutex
	admins map[string]struct{}
}

// NewEnrichService creates the mention/badge decorator. A nil role
// repository leaves badges off; mentions still highlight.
func NewEnrichService(roles repository.RoleRepository, logger *slog.Logger) usecase.EnrichUsecase {
	return &enrichService{
		roles:  roles,
		logger: logger,
		admins: map[string]struct{}{},
	}
}

func (s *enrichService) Refresh(ctx context.Context) error {
	if s.roles == nil {
		return nil
	}

	uids, err := s.roles.AdminUIDs(ctx)
	if err != nil {
		return errors.Wrap(err, "load admin identities")
	}

	admins := make(map[string]struct{}, len(uids))
	for _, uid := range uids {
		admins[uid] = struct{}{}
	}

	s.mu.Lock()
	s.admins = admins
	s.mu.Unlock()

	return nil
}

// DecorateComment runs inside the document lock of whoever created the node.
func (s *enrichService) DecorateComment(item *goquery.Selection) {
	if item == nil || item.Length() == 0 {
		return
	}

	if text := item.Find(".comment-text").First(); text.Length() > 0 {
		text.SetHtml(highlightMentions(text.Text()))
	}

	uid, _ := item.Attr("data-author-uid")
	if !s.isAdmin(uid) {
		return
	}
	meta := item.Find(".comment-meta").First()
	if meta.Length() > 0 && meta.Find(".badge").Length() == 0 {
		meta.PrependHtml(roleBadgeHTML + " ")
	}
}

func (s *enrichService) DecoratePost(card *goquery.Selection) {
	if card == nil || card.Length() == 0 {
		return
	}

	if content := card.Find(".post-content").First(); content.Length() > 0 {
		content.SetHtml(highlightMentions(content.Text()))
	}

	uid, _ := card.Attr("data-author-uid")
	if !s.isAdmin(uid) {
		return
	}
	author := card.Find("header .post-author").First()
	if author.Length() > 0 && author.Find(".badge").Length() == 0 {
		author.AppendHtml(" " + roleBadgeHTML)
	}
}

func (s *enrichService) isAdmin(uid string) bool {
	if uid == "" {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.admins[uid]

	return ok
}

// highlightMentions escapes the raw text, then wraps each mention. Escaping
// first keeps user text from smuggling markup in through the rewrite.
func highlightMentions(text string) string {
	escaped := html.EscapeString(text)

	return mentionRE.ReplaceAllString(escaped, `<span class="mention">@$1</span>`)
}
