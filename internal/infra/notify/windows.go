package notify

import (
	"sync"

	"menfes/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type windowClients struct {
	mu      sync.Mutex
	windows map[string]service.Window
}

// NewWindowClients creates the in-memory open-window registry.
func NewWindowClients() service.WindowClients {
	return &windowClients{windows: map[string]service.Window{}}
}

func (w *windowClients) List() []service.Window {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]service.Window, 0, len(w.windows))
	for _, win := range w.windows {
		out = append(out, win)
	}

	return out
}

func (w *windowClients) Focus(id, url string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	win, ok := w.windows[id]
	if !ok {
		return errors.Errorf("window %s is gone", id)
	}

	win.URL = url
	w.windows[id] = win

	return nil
}

func (w *windowClients) Open(url string) service.Window {
	w.mu.Lock()
	defer w.mu.Unlock()

	win := service.Window{ID: uuid.New().String(), URL: url}
	w.windows[win.ID] = win

	return win
}
