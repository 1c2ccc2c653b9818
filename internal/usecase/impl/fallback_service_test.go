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
	"menfes/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestFallbackService(t *testing.T) (*fallbackService, *mockSvc.MockEventStream, *mockUc.MockToastUsecase, *view.Document) {
	stream := mockSvc.NewMockEventStream(t)
	toasts := mockUc.NewMockToastUsecase(t)
	doc, err := view.ParseString(feedPageHTML)
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// A nil realtime source activates the fallback path.
	svc := NewFallbackService(nil, stream, toasts, doc, logger).(*fallbackService)

	return svc, stream, toasts, doc
}

func TestFallbackService_InactiveWhenPrimaryChannelPresent(t *testing.T) {
	source := mockSvc.NewMockRealtimeSource(t)
	stream := mockSvc.NewMockEventStream(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewFallbackService(source, stream, nil, nil, logger)

	require.NoError(t, svc.Run(context.Background()))
}

func TestFallbackService_PatchesLikeCounts(t *testing.T) {
	svc, stream, toasts, doc := createTestFallbackService(t)

	ch := make(chan service.StreamEvent, 8)
	stream.EXPECT().Listen(mock.Anything).Return(ch)

	done := make(chan error, 1)
	ctx, cancel := context.WithCancel(context.Background())
	go func() { done <- svc.Run(ctx) }()

	// A malformed payload and one missing its count are both dropped.
	ch <- service.StreamEvent{Name: "like", Data: `{broken`}
	ch <- service.StreamEvent{Name: "like", Data: `{"post_id":"a1"}`}
	ch <- service.StreamEvent{Name: "like", Data: `{"post_id":"a1","likes":6}`}

	toasted := make(chan struct{})
	toasts.EXPECT().
		Enqueue(entity.NotificationRequest{Kind: entity.KindComment, Message: "Komentar baru masuk"}).
		Run(func(entity.NotificationRequest) { close(toasted) }).
		Return()
	ch <- service.StreamEvent{Name: "comment", Data: `{}`}

	select {
	case <-toasted:
	case <-time.After(time.Second):
		t.Fatal("comment event was never toasted")
	}

	// Events process in order, so the like patch landed before the toast.
	assert.Equal(t, "6", doc.Text("#post-a1 .like-count"))
	assert.Equal(t, "0", doc.Text("#post-b2 .like-count"))

	cancel()
	require.NoError(t, <-done)
}

func TestFallbackService_ToastsNewPosts(t *testing.T) {
	svc, stream, toasts, _ := createTestFallbackService(t)

	ch := make(chan service.StreamEvent, 8)
	stream.EXPECT().Listen(mock.Anything).Return(ch)

	toasted := make(chan struct{})
	toasts.EXPECT().
		Enqueue(entity.NotificationRequest{Kind: entity.KindInfo, Message: "Menfess baru terkirim"}).
		Run(func(entity.NotificationRequest) { close(toasted) }).
		Return()

	done := make(chan error, 1)
	ctx, cancel := context.WithCancel(context.Background())
	go func() { done <- svc.Run(ctx) }()

	ch <- service.StreamEvent{Name: "post", Data: `{"post_id":"zz99"}`}

	select {
	case <-toasted:
	case <-time.After(time.Second):
		t.Fatal("post event was never toasted")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestFallbackService_StopsWhenStreamCloses(t *testing.T) {
	svc, stream, _, _ := createTestFallbackService(t)

	ch := make(chan service.StreamEvent)
	stream.EXPECT().Listen(mock.Anything).Return(ch)

	done := make(chan error, 1)
	go func() { done <- svc.Run(context.Background()) }()

	close(ch)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("run did not return after stream close")
	}
}
