package stream

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"menfes/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListenParsesNamedEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "text/event-stream", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "text/event-stream")

		flusher, ok := w.(http.Flusher)
		require.True(t, ok)

		_, _ = w.Write([]byte(": keepalive\n\n"))
		_, _ = w.Write([]byte("event: like\ndata: {\"post_id\":\"p1\",\"likes\":4}\n\n"))
		_, _ = w.Write([]byte("event: comment\ndata: {}\n\n"))
		flusher.Flush()

		// Hold the connection open until the client goes away.
		<-r.Context().Done()
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Board.BaseURL = server.URL
	cfg.Board.StreamPath = "/stream"

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	events := NewClient(cfg, slog.New(slog.DiscardHandler)).Listen(ctx)

	first := <-events
	assert.Equal(t, "like", first.Name)
	assert.Equal(t, `{"post_id":"p1","likes":4}`, first.Data)

	second := <-events
	assert.Equal(t, "comment", second.Name)

	cancel()
	select {
	case _, open := <-events:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("channel did not close on cancellation")
	}
}
