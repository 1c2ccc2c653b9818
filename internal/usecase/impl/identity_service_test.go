package impl

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"menfes/internal/domain/repository"
	mockRepo "menfes/internal/mocks/repository"
	"menfes/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestIdentityService(t *testing.T) (usecase.IdentityUsecase, *mockRepo.MockLocalStore) {
	store := mockRepo.NewMockLocalStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewIdentityService(store, logger), store
}

func TestIdentityService_GeneratesAndPersistsIdentity(t *testing.T) {
	service, store := createTestIdentityService(t)

	store.EXPECT().Get(mock.Anything, repository.KeyIdentity).Return("", repository.ErrKeyNotFound).Once()
	store.EXPECT().Set(mock.Anything, repository.KeyIdentity, mock.Anything).Return(nil).Once()

	uid := service.Current()

	require.True(t, strings.HasPrefix(uid, "u_"), "generated identity %q lacks prefix", uid)
	assert.NotEqual(t, GuestUID, uid)

	// Cached for the session; the store is not consulted again.
	assert.Equal(t, uid, service.Current())
}

func TestIdentityService_ReusesStoredIdentity(t *testing.T) {
	service, store := createTestIdentityService(t)

	store.EXPECT().Get(mock.Anything, repository.KeyIdentity).Return("u_abc123", nil).Once()

	assert.Equal(t, "u_abc123", service.Current())
}

func TestIdentityService_FallsBackToGuestOnStoreFailure(t *testing.T) {
	service, store := createTestIdentityService(t)

	store.EXPECT().Get(mock.Anything, repository.KeyIdentity).Return("", errors.New("store unreadable")).Once()

	assert.Equal(t, GuestUID, service.Current())
}

func TestIdentityService_SetAuthenticatedNotifiesSubscribers(t *testing.T) {
	service, store := createTestIdentityService(t)

	store.EXPECT().Set(mock.Anything, repository.KeyIdentity, "fb_42").Return(nil).Once()

	var notified []string
	service.OnChange(func(uid string) { notified = append(notified, uid) })

	service.SetAuthenticated("fb_42")

	assert.Equal(t, []string{"fb_42"}, notified)
	assert.Equal(t, "fb_42", service.Current())

	// The same identity again is a no-op.
	service.SetAuthenticated("fb_42")
	assert.Equal(t, []string{"fb_42"}, notified)
}
