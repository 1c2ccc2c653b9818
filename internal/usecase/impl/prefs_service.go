package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"menfes/internal/domain/entity"
	"menfes/internal/domain/repository"
	"menfes/internal/usecase"
	"menfes/internal/view"

	"github.com/PuerkitoBio/goquery"
)

const (
	themeLight = "light"
	themeDark  = "dark"

	defaultDisplayName = "Anon"

	draftSavedMessage   = "Draft tersimpan"
	draftClearedMessage = "Draft dihapus"
)

type prefsService struct {
	store  repository.LocalStore
	toasts usecase.ToastUsecase
	doc    *view.Document
	logger *slog.Logger
}

// NewPrefsService creates the local preferences manager.
func NewPrefsService(store repository.LocalStore, toasts usecase.ToastUsecase, doc *view.Document, logger *slog.Logger) usecase.PrefsUsecase {
	return &prefsService{
		store:  store,
		toasts: toasts,
		doc:    doc,
		logger: logger,
	}
}

func (s *prefsService) Theme(ctx context.Context) string {
	if v, err := s.store.Get(ctx, repository.KeyTheme); err == nil && v == themeDark {
		return themeDark
	}

	return themeLight
}

func (s *prefsService) ToggleTheme(ctx context.Context) string {
	next := themeDark
	if s.Theme(ctx) == themeDark {
		next = themeLight
	}

	if err := s.store.Set(ctx, repository.KeyTheme, next); err != nil {
		s.logger.Warn("persist theme", slog.Any("error", err))
	}
	s.doc.Update(func(doc *goquery.Document) {
		body := doc.Find("body").First()
		if next == themeDark {
			body.AddClass(themeDark)
		} else {
			body.RemoveClass(themeDark)
		}
	})

	return next
}

func (s *prefsService) DisplayName(ctx context.Context) string {
	v, err := s.store.Get(ctx, repository.KeyName)
	if err != nil {
		return defaultDisplayName
	}
	if v = strings.TrimSpace(v); v == "" {
		return defaultDisplayName
	}

	return v
}

func (s *prefsService) RememberName(ctx context.Context, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		if err := s.store.Delete(ctx, repository.KeyName); err != nil {
			s.logger.Warn("clear display name", slog.Any("error", err))
		}

		return
	}
	if err := s.store.Set(ctx, repository.KeyName, name); err != nil {
		s.logger.Warn("persist display name", slog.Any("error", err))
	}
}

func (s *prefsService) Draft(ctx context.Context) usecase.Draft {
	raw, err := s.store.Get(ctx, repository.KeyDraft)
	if err != nil || raw == "" {
		return usecase.Draft{}
	}

	var draft usecase.Draft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		s.logger.Warn("decode stored draft", slog.Any("error", err))

		return usecase.Draft{}
	}

	return draft
}

func (s *prefsService) SaveDraft(ctx context.Context, draft usecase.Draft) {
	raw, err := json.Marshal(draft)
	if err != nil {
		s.logger.Warn("encode draft", slog.Any("error", err))

		return
	}
	if err := s.store.Set(ctx, repository.KeyDraft, string(raw)); err != nil {
		s.logger.Warn("persist draft", slog.Any("error", err))
	}

	s.toasts.Enqueue(entity.NotificationRequest{
		Kind:    entity.KindInfo,
		Message: draftSavedMessage,
	})
}

func (s *prefsService) ClearDraft(ctx context.Context) {
	if err := s.store.Delete(ctx, repository.KeyDraft); err != nil {
		s.logger.Warn("clear draft", slog.Any("error", err))
	}

	s.toasts.Enqueue(entity.NotificationRequest{
		Kind:    entity.KindDelete,
		Message: draftClearedMessage,
	})
}
