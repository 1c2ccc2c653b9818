package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"menfes/internal/domain/entity"
	"menfes/internal/domain/repository"
	mockRepo "menfes/internal/mocks/repository"
	mockUc "menfes/internal/mocks/usecase"
	"menfes/internal/usecase"
	"menfes/internal/view"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPrefsService(t *testing.T) (usecase.PrefsUsecase, *mockRepo.MockLocalStore, *mockUc.MockToastUsecase, *view.Document) {
	store := mockRepo.NewMockLocalStore(t)
	toasts := mockUc.NewMockToastUsecase(t)
	doc, err := view.ParseString(`<html><body class="page"></body></html>`)
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewPrefsService(store, toasts, doc, logger), store, toasts, doc
}

func TestPrefsService_ThemeDefaultsToLight(t *testing.T) {
	service, store, _, _ := createTestPrefsService(t)
	ctx := context.Background()

	store.EXPECT().Get(ctx, repository.KeyTheme).Return("", repository.ErrKeyNotFound).Once()
	assert.Equal(t, "light", service.Theme(ctx))
}

func TestPrefsService_ToggleTheme(t *testing.T) {
	service, store, _, doc := createTestPrefsService(t)
	ctx := context.Background()

	store.EXPECT().Get(ctx, repository.KeyTheme).Return("", repository.ErrKeyNotFound).Once()
	store.EXPECT().Set(ctx, repository.KeyTheme, "dark").Return(nil).Once()

	assert.Equal(t, "dark", service.ToggleTheme(ctx))
	assert.True(t, doc.HasClass("body", "dark"))

	store.EXPECT().Get(ctx, repository.KeyTheme).Return("dark", nil).Once()
	store.EXPECT().Set(ctx, repository.KeyTheme, "light").Return(nil).Once()

	assert.Equal(t, "light", service.ToggleTheme(ctx))
	assert.False(t, doc.HasClass("body", "dark"))
}

func TestPrefsService_DisplayNameDefaultsToAnon(t *testing.T) {
	service, store, _, _ := createTestPrefsService(t)
	ctx := context.Background()

	store.EXPECT().Get(ctx, repository.KeyName).Return("", repository.ErrKeyNotFound).Once()
	assert.Equal(t, "Anon", service.DisplayName(ctx))

	store.EXPECT().Get(ctx, repository.KeyName).Return("   ", nil).Once()
	assert.Equal(t, "Anon", service.DisplayName(ctx))

	store.EXPECT().Get(ctx, repository.KeyName).Return(" Budi ", nil).Once()
	assert.Equal(t, "Budi", service.DisplayName(ctx))
}

func TestPrefsService_RememberName(t *testing.T) {
	service, store, _, _ := createTestPrefsService(t)
	ctx := context.Background()

	store.EXPECT().Set(ctx, repository.KeyName, "Budi").Return(nil).Once()
	service.RememberName(ctx, "  Budi  ")

	// Blank input clears the stored name instead of persisting whitespace.
	store.EXPECT().Delete(ctx, repository.KeyName).Return(nil).Once()
	service.RememberName(ctx, "   ")
}

func TestPrefsService_DraftRoundTrip(t *testing.T) {
	service, store, toasts, _ := createTestPrefsService(t)
	ctx := context.Background()

	draft := usecase.Draft{Name: "Anon", To: "kelas 2B", Mood: "😊", Content: "halo semua"}

	// Capture what was written, then feed it back for the read.
	var raw string
	store.EXPECT().Set(ctx, repository.KeyDraft, mock.MatchedBy(func(v string) bool {
		raw = v

		return true
	})).Return(nil).Once()
	toasts.EXPECT().Enqueue(entity.NotificationRequest{Kind: entity.KindInfo, Message: "Draft tersimpan"}).Return().Once()

	service.SaveDraft(ctx, draft)
	require.NotEmpty(t, raw)

	store.EXPECT().Get(ctx, repository.KeyDraft).Return(raw, nil).Once()
	assert.Equal(t, draft, service.Draft(ctx))
}

func TestPrefsService_DraftAbsentOrCorrupt(t *testing.T) {
	service, store, _, _ := createTestPrefsService(t)
	ctx := context.Background()

	store.EXPECT().Get(ctx, repository.KeyDraft).Return("", repository.ErrKeyNotFound).Once()
	assert.Equal(t, usecase.Draft{}, service.Draft(ctx))

	store.EXPECT().Get(ctx, repository.KeyDraft).Return("{not json", nil).Once()
	assert.Equal(t, usecase.Draft{}, service.Draft(ctx))
}

func TestPrefsService_ClearDraft(t *testing.T) {
	service, store, toasts, _ := createTestPrefsService(t)
	ctx := context.Background()

	store.EXPECT().Delete(ctx, repository.KeyDraft).Return(errors.New("store unwritable")).Once()
	toasts.EXPECT().Enqueue(entity.NotificationRequest{Kind: entity.KindDelete, Message: "Draft dihapus"}).Return().Once()

	// The confirmation toast still shows; storage failures stay silent.
	service.ClearDraft(ctx)
}
