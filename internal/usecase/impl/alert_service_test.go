package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"menfes/internal/domain/entity"
	"menfes/internal/domain/service"
	mockSvc "menfes/internal/mocks/service"
	mockUc "menfes/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAlertService(t *testing.T) (*alertService, *mockSvc.MockRealtimeSource, *mockUc.MockIdentityUsecase, *mockUc.MockToastUsecase) {
	source := mockSvc.NewMockRealtimeSource(t)
	identity := mockUc.NewMockIdentityUsecase(t)
	toasts := mockUc.NewMockToastUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewAlertService(source, identity, toasts, logger).(*alertService), source, identity, toasts
}

func TestAlertService_ToastsUnreadAlerts(t *testing.T) {
	svc, source, identity, toasts := createTestAlertService(t)

	ch := make(chan service.Change, 4)
	identity.EXPECT().OnChange(mock.Anything).Return()
	identity.EXPECT().Current().Return("u_me")
	source.EXPECT().AlertChanges(mock.Anything, "u_me").Return(ch, nil).Once()

	toasts.EXPECT().
		Enqueue(entity.NotificationRequest{Kind: entity.KindLike, Message: "Ada yang menyukai menfes kamu"}).
		Return()

	marked := make(chan struct{})
	source.EXPECT().MarkAlertRead(mock.Anything, "n1").
		RunAndReturn(func(context.Context, string) error {
			close(marked)

			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	ch <- service.Change{
		Kind: service.ChangeAdded,
		Doc: service.Document{
			ID:   "n1",
			Data: map[string]any{"message": "Ada yang menyukai menfes kamu", "type": "like"},
		},
	}

	select {
	case <-marked:
	case <-time.After(time.Second):
		t.Fatal("alert was never marked read")
	}
}

func TestAlertService_ReadReceiptFailureStillToasts(t *testing.T) {
	svc, source, identity, toasts := createTestAlertService(t)

	ch := make(chan service.Change, 4)
	identity.EXPECT().OnChange(mock.Anything).Return()
	identity.EXPECT().Current().Return("u_me")
	source.EXPECT().AlertChanges(mock.Anything, "u_me").Return(ch, nil).Once()

	toasted := make(chan struct{})
	toasts.EXPECT().Enqueue(mock.Anything).Run(func(entity.NotificationRequest) {
		close(toasted)
	}).Return()
	source.EXPECT().MarkAlertRead(mock.Anything, "n2").Return(errors.New("offline")).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	ch <- service.Change{
		Kind: service.ChangeAdded,
		Doc:  service.Document{ID: "n2", Data: map[string]any{"message": "Komentar baru", "type": "comment"}},
	}

	select {
	case <-toasted:
	case <-time.After(time.Second):
		t.Fatal("alert was never toasted")
	}
	// Let the failing receipt write land before expectations are checked.
	time.Sleep(20 * time.Millisecond)
}

func TestAlertService_AdminAlertOverridesKind(t *testing.T) {
	svc, source, identity, toasts := createTestAlertService(t)

	ch := make(chan service.Change, 4)
	identity.EXPECT().OnChange(mock.Anything).Return()
	identity.EXPECT().Current().Return("u_me")
	source.EXPECT().AlertChanges(mock.Anything, "u_me").Return(ch, nil).Once()

	toasted := make(chan struct{})
	toasts.EXPECT().
		Enqueue(entity.NotificationRequest{Kind: entity.KindAdmin, Message: "🛡️ Admin: Pengumuman penting"}).
		Run(func(entity.NotificationRequest) { close(toasted) }).
		Return()
	source.EXPECT().MarkAlertRead(mock.Anything, "n3").Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	ch <- service.Change{
		Kind: service.ChangeAdded,
		Doc: service.Document{
			ID:   "n3",
			Data: map[string]any{"message": "Pengumuman penting", "type": "info", "by_admin": true},
		},
	}

	select {
	case <-toasted:
	case <-time.After(time.Second):
		t.Fatal("admin alert was never toasted")
	}
	time.Sleep(20 * time.Millisecond)
}

func TestAlertService_SkipsResubscribeForSameIdentity(t *testing.T) {
	svc, source, identity, _ := createTestAlertService(t)

	ch := make(chan service.Change)
	var onChange func(string)
	identity.EXPECT().OnChange(mock.Anything).Run(func(fn func(string)) {
		onChange = fn
	}).Return()
	identity.EXPECT().Current().Return("u_me")
	source.EXPECT().AlertChanges(mock.Anything, "u_me").Return(ch, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)
	require.NotNil(t, onChange)

	// Sign-in resolving to the identity already subscribed is a no-op.
	onChange("u_me")
}

func TestAlertService_ResubscribesOnIdentityChange(t *testing.T) {
	svc, source, identity, _ := createTestAlertService(t)

	chOld := make(chan service.Change)
	chNew := make(chan service.Change)
	var onChange func(string)
	identity.EXPECT().OnChange(mock.Anything).Run(func(fn func(string)) {
		onChange = fn
	}).Return()
	identity.EXPECT().Current().Return("u_me")
	source.EXPECT().AlertChanges(mock.Anything, "u_me").Return(chOld, nil).Once()
	source.EXPECT().AlertChanges(mock.Anything, "fb_7").Return(chNew, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)
	require.NotNil(t, onChange)

	onChange("fb_7")
}
