// Package stream consumes the board's server-sent event stream, the
// fallback real-time channel when the document database is unavailable.
package stream

import (
	"bufio"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"menfes/config"
	"menfes/internal/domain/service"

	"github.com/codeGROOVE-dev/retry"
	"github.com/pkg/errors"
)

// Client holds one long-lived SSE connection. Reconnection mimics the
// platform's EventSource behavior: automatic, with backoff, forever.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an SSE client for the configured stream endpoint.
func NewClient(cfg *config.Config, logger *slog.Logger) service.EventStream {
	return &Client{
		url:        cfg.Board.BaseURL + cfg.Board.StreamPath,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Listen emits events until the context is canceled. Connection failures
// are swallowed into reconnect attempts; the channel closes only on
// cancellation.
func (c *Client) Listen(ctx context.Context) <-chan service.StreamEvent {
	out := make(chan service.StreamEvent, 16)

	go func() {
		defer close(out)

		err := retry.Do(
			func() error { return c.consume(ctx, out) },
			retry.Attempts(0),
			retry.Delay(time.Second),
			retry.MaxDelay(30*time.Second),
			retry.Context(ctx),
			retry.OnRetry(func(n uint, err error) {
				c.logger.Warn("event stream reconnecting", slog.Uint64("attempt", uint64(n)), slog.Any("error", err))
			}),
		)
		if err != nil && ctx.Err() == nil {
			c.logger.Warn("event stream closed", slog.Any("error", err))
		}
	}()

	return out
}

// consume holds one connection open and forwards its events.
func (c *Client) consume(ctx context.Context, out chan<- service.StreamEvent) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return retry.Unrecoverable(errors.Wrap(err, "build stream request"))
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "connect stream")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("stream returned %s", resp.Status)
	}

	var name string
	var data []string

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case line == "":
			if name != "" || len(data) > 0 {
				event := service.StreamEvent{Name: name, Data: strings.Join(data, "\n")}
				if event.Name == "" {
					event.Name = "message"
				}

				select {
				case out <- event:
				case <-ctx.Done():
					return retry.Unrecoverable(ctx.Err())
				}
			}
			name = ""
			data = nil
		case strings.HasPrefix(line, ":"):
			// comment / keepalive
		case strings.HasPrefix(line, "event:"):
			name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data = append(data, strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read stream")
	}

	return errors.New("stream ended")
}
