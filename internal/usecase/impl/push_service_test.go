package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"menfes/internal/domain/entity"
	"menfes/internal/domain/repository"
	"menfes/internal/domain/service"
	mockRepo "menfes/internal/mocks/repository"
	mockSvc "menfes/internal/mocks/service"
	mockUc "menfes/internal/mocks/usecase"
	"menfes/internal/usecase"
	"menfes/internal/view"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushServiceFixture struct {
	service       usecase.PushUsecase
	store         *mockRepo.MockLocalStore
	registrations *mockRepo.MockRegistrationRepository
	gateway       *mockSvc.MockPushGateway
	permissions   *mockSvc.MockPermissionSource
	sender        *mockSvc.MockPushSender
	identity      *mockUc.MockIdentityUsecase
	doc           *view.Document

	// identityChanged is the subscriber the service registered, so tests
	// can simulate a completed sign-in.
	identityChanged func(string)
}

func createTestPushService(t *testing.T) *pushServiceFixture {
	f := &pushServiceFixture{
		store:         mockRepo.NewMockLocalStore(t),
		registrations: mockRepo.NewMockRegistrationRepository(t),
		gateway:       mockSvc.NewMockPushGateway(t),
		permissions:   mockSvc.NewMockPermissionSource(t),
		sender:        mockSvc.NewMockPushSender(t),
		identity:      mockUc.NewMockIdentityUsecase(t),
	}

	doc, err := view.ParseString(`<html><body><button id="notifToggle">Notif: Off</button></body></html>`)
	require.NoError(t, err)
	f.doc = doc

	f.identity.EXPECT().OnChange(mock.Anything).Run(func(fn func(string)) {
		f.identityChanged = fn
	}).Return().Once()

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f.service = NewPushService(
		f.store, f.registrations, f.gateway, f.permissions, f.sender,
		f.identity, f.doc, logger, "menfes-client/1.0",
	)

	return f
}

func TestPushService_EnsurePermissionAndToken_Granted(t *testing.T) {
	f := createTestPushService(t)
	ctx := context.Background()

	f.permissions.EXPECT().State().Return(service.PermissionGranted)
	f.gateway.EXPECT().Token(ctx).Return("tok-1", nil)
	f.identity.EXPECT().Current().Return("u_me")
	f.registrations.EXPECT().Save(ctx, mock.MatchedBy(func(reg *entity.PushRegistration) bool {
		return reg.Token == "tok-1" && reg.UID == "u_me" && reg.UserAgent == "menfes-client/1.0"
	})).Return(nil)
	f.store.EXPECT().Set(ctx, repository.KeyPushToken, "tok-1").Return(nil)

	require.NoError(t, f.service.EnsurePermissionAndToken(ctx))
	assert.Equal(t, "Notif: On", f.doc.Text("#notifToggle"))
}

func TestPushService_EnsurePermissionAndToken_PromptDenied(t *testing.T) {
	f := createTestPushService(t)
	ctx := context.Background()

	f.permissions.EXPECT().State().Return(service.PermissionDefault)
	f.permissions.EXPECT().Request(ctx).Return(service.PermissionDenied, nil)

	require.NoError(t, f.service.EnsurePermissionAndToken(ctx))
	assert.Equal(t, "Notif: Off", f.doc.Text("#notifToggle"))
}

func TestPushService_EnsurePermissionAndToken_TokenFailureDegradesSilently(t *testing.T) {
	f := createTestPushService(t)
	ctx := context.Background()

	f.permissions.EXPECT().State().Return(service.PermissionGranted)
	f.gateway.EXPECT().Token(ctx).Return("", errors.New("gateway unavailable"))

	require.NoError(t, f.service.EnsurePermissionAndToken(ctx))
	assert.Equal(t, "Notif: Off", f.doc.Text("#notifToggle"))
}

func TestPushService_SaveToken_RemoteFailureKeepsLocalStateOff(t *testing.T) {
	f := createTestPushService(t)
	ctx := context.Background()

	f.identity.EXPECT().Current().Return("u_me")
	f.registrations.EXPECT().Save(ctx, mock.Anything).Return(errors.New("write denied"))

	require.NoError(t, f.service.SaveToken(ctx, "tok-1"))
	assert.Equal(t, "Notif: Off", f.doc.Text("#notifToggle"))
}

func TestPushService_DisableNotifications_ClearsLocalStateUnconditionally(t *testing.T) {
	f := createTestPushService(t)
	ctx := context.Background()

	f.store.EXPECT().Get(ctx, repository.KeyPushToken).Return("tok-1", nil)
	f.gateway.EXPECT().DeleteToken(ctx, "tok-1").Return(errors.New("gateway unavailable"))
	f.registrations.EXPECT().Delete(ctx, "tok-1").Return(errors.New("write denied"))
	f.store.EXPECT().Delete(ctx, repository.KeyPushToken).Return(nil)

	require.NoError(t, f.service.DisableNotifications(ctx))
	assert.Equal(t, "Notif: Off", f.doc.Text("#notifToggle"))
}

func TestPushService_Toggle_DisablesWhenTokenHeld(t *testing.T) {
	f := createTestPushService(t)
	ctx := context.Background()

	f.store.EXPECT().Get(ctx, repository.KeyPushToken).Return("tok-1", nil).Twice()
	f.gateway.EXPECT().DeleteToken(ctx, "tok-1").Return(nil)
	f.registrations.EXPECT().Delete(ctx, "tok-1").Return(nil)
	f.store.EXPECT().Delete(ctx, repository.KeyPushToken).Return(nil)

	require.NoError(t, f.service.Toggle(ctx))
	assert.Equal(t, "Notif: Off", f.doc.Text("#notifToggle"))
}

func TestPushService_Toggle_EnablesWhenNoToken(t *testing.T) {
	f := createTestPushService(t)
	ctx := context.Background()

	f.store.EXPECT().Get(ctx, repository.KeyPushToken).Return("", repository.ErrKeyNotFound)
	f.permissions.EXPECT().State().Return(service.PermissionDefault)
	f.permissions.EXPECT().Request(ctx).Return(service.PermissionGranted, nil)
	f.gateway.EXPECT().Token(ctx).Return("tok-2", nil)
	f.identity.EXPECT().Current().Return("u_me")
	f.registrations.EXPECT().Save(ctx, mock.Anything).Return(nil)
	f.store.EXPECT().Set(ctx, repository.KeyPushToken, "tok-2").Return(nil)

	require.NoError(t, f.service.Toggle(ctx))
	assert.Equal(t, "Notif: On", f.doc.Text("#notifToggle"))
}

func TestPushService_TestPush(t *testing.T) {
	f := createTestPushService(t)
	ctx := context.Background()

	f.store.EXPECT().Get(ctx, repository.KeyPushToken).Return("tok-1", nil)
	f.sender.EXPECT().
		SendToToken(ctx, "tok-1", entity.DefaultPushTitle, testPushBody, mock.Anything).
		Return(nil)

	require.NoError(t, f.service.TestPush(ctx))
}

func TestPushService_TestPush_NoTokenIsNoop(t *testing.T) {
	f := createTestPushService(t)

	f.store.EXPECT().Get(mock.Anything, repository.KeyPushToken).Return("", repository.ErrKeyNotFound)

	require.NoError(t, f.service.TestPush(context.Background()))
}

func TestPushService_IdentityChangeRestampsRegistration(t *testing.T) {
	f := createTestPushService(t)
	require.NotNil(t, f.identityChanged)

	// A held token is re-registered so the remote record carries the
	// authenticated uid instead of the generated one.
	f.store.EXPECT().Get(mock.Anything, repository.KeyPushToken).Return("tok-1", nil)
	f.identity.EXPECT().Current().Return("fb_42")
	f.registrations.EXPECT().Save(mock.Anything, mock.MatchedBy(func(reg *entity.PushRegistration) bool {
		return reg.Token == "tok-1" && reg.UID == "fb_42"
	})).Return(nil)
	f.store.EXPECT().Set(mock.Anything, repository.KeyPushToken, "tok-1").Return(nil)

	f.identityChanged("fb_42")
	assert.Equal(t, "Notif: On", f.doc.Text("#notifToggle"))
}

func TestPushService_IdentityChangeWithoutTokenRunsFullFlow(t *testing.T) {
	f := createTestPushService(t)
	require.NotNil(t, f.identityChanged)

	f.store.EXPECT().Get(mock.Anything, repository.KeyPushToken).Return("", repository.ErrKeyNotFound)
	f.permissions.EXPECT().State().Return(service.PermissionGranted)
	f.gateway.EXPECT().Token(mock.Anything).Return("tok-3", nil)
	f.identity.EXPECT().Current().Return("fb_42")
	f.registrations.EXPECT().Save(mock.Anything, mock.MatchedBy(func(reg *entity.PushRegistration) bool {
		return reg.Token == "tok-3" && reg.UID == "fb_42"
	})).Return(nil)
	f.store.EXPECT().Set(mock.Anything, repository.KeyPushToken, "tok-3").Return(nil)

	f.identityChanged("fb_42")
	assert.Equal(t, "Notif: On", f.doc.Text("#notifToggle"))
}
