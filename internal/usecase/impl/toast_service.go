package impl

import (
	"fmt"
	"html"
	"log/slog"
	"sync"
	"time"

	"menfes/config"
	"menfes/internal/domain/entity"
	"menfes/internal/usecase"
	"menfes/internal/view"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
)

const (
	// maxVisibleToasts bounds how many toasts render at once; everything
	// beyond it queues in arrival order.
	maxVisibleToasts = 3

	toastDwell = 5 * time.Second
	toastFade  = 500 * time.Millisecond

	// Inline popups (foreground push messages) dwell shorter and fade
	// slower than regular toasts.
	inlineDwell = 4 * time.Second
	inlineFade  = 600 * time.Millisecond
)

type toastEntry struct {
	id     string
	req    entity.NotificationRequest
	inline bool
}

type toastService struct {
	doc     *view.Document
	logger  *slog.Logger
	logoURL string

	dwell       time.Duration
	fade        time.Duration
	inlineDwell time.Duration
	inlineFade  time.Duration

	mu      sync.Mutex
	visible []toastEntry
	pending []toastEntry
}

// NewToastService creates the bounded toast display queue.
func NewToastService(cfg *config.Config, doc *view.Document, logger *slog.Logger) usecase.ToastUsecase {
	return newToastService(cfg.Board.LogoURL, doc, logger, toastDwell, toastFade, inlineDwell, inlineFade)
}

func newToastService(logoURL string, doc *view.Document, logger *slog.Logger, dwell, fade, inDwell, inFade time.Duration) *toastService {
	return &toastService{
		doc:         doc,
		logger:      logger,
		logoURL:     logoURL,
		dwell:       dwell,
		fade:        fade,
		inlineDwell: inDwell,
		inlineFade:  inFade,
	}
}

func (s *toastService) Enqueue(req entity.NotificationRequest) {
	s.enqueue(toastEntry{id: uuid.New().String(), req: req})
}

func (s *toastService) EnqueueInline(req entity.NotificationRequest) {
	s.enqueue(toastEntry{id: uuid.New().String(), req: req, inline: true})
}

func (s *toastService) enqueue(e toastEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = append(s.pending, e)
	s.admitLocked()
}

// admitLocked moves pending entries into the visible set, oldest first,
// until the bound is reached. Callers hold s.mu.
func (s *toastService) admitLocked() {
	for len(s.visible) < maxVisibleToasts && len(s.pending) > 0 {
		e := s.pending[0]
		s.pending = s.pending[1:]
		s.visible = append(s.visible, e)
		s.show(e)
	}
}

func (s *toastService) show(e toastEntry) {
	s.doc.Update(func(doc *goquery.Document) {
		wrap := doc.Find(".toast-wrap").First()
		if wrap.Length() == 0 {
			doc.Find("body").First().AppendHtml(`<div class="toast-wrap"></div>`)
			wrap = doc.Find(".toast-wrap").First()
		}
		wrap.AppendHtml(s.renderToast(e))
	})

	dwell := s.dwell
	if e.inline {
		dwell = s.inlineDwell
	}
	time.AfterFunc(dwell, func() { s.beginFade(e) })
}

func (s *toastService) renderToast(e toastEntry) string {
	classes := "toast"
	if e.req.Kind != "" {
		classes += " " + string(e.req.Kind)
	}
	if e.inline {
		classes += " inline"
	}
	classes += " in"

	return fmt.Sprintf(
		`<div class=%q data-toast-id=%q><img class="toast-logo" src=%q alt="Menfes UNBIN"><span class="toast-ico">%s</span><div class="toast-msg">%s</div></div>`,
		classes, e.id, s.logoURL, e.req.ResolveAccent(), html.EscapeString(e.req.Message),
	)
}

// beginFade drops the "in" class so the node transitions out, then removes
// it once the fade has run.
func (s *toastService) beginFade(e toastEntry) {
	s.doc.Update(func(doc *goquery.Document) {
		doc.Find(fmt.Sprintf(`.toast[data-toast-id=%q]`, e.id)).RemoveClass("in")
	})

	fade := s.fade
	if e.inline {
		fade = s.inlineFade
	}
	time.AfterFunc(fade, func() { s.dismiss(e.id) })
}

// dismiss removes the node and frees the slot, admitting the next pending
// entry immediately.
func (s *toastService) dismiss(id string) {
	s.doc.Update(func(doc *goquery.Document) {
		doc.Find(fmt.Sprintf(`.toast[data-toast-id=%q]`, id)).Remove()
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.visible {
		if e.id == id {
			s.visible = append(s.visible[:i], s.visible[i+1:]...)

			break
		}
	}
	s.admitLocked()
}

func (s *toastService) visibleMessages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.visible))
	for _, e := range s.visible {
		out = append(out, e.req.Message)
	}

	return out
}

func (s *toastService) pendingMessages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.pending))
	for _, e := range s.pending {
		out = append(out, e.req.Message)
	}

	return out
}
