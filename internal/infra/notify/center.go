// Package notify holds the worker-context platform surfaces: the system
// notification tray and the open window registry.
package notify

import (
	"sync"
	"time"

	"menfes/internal/domain/service"

	"github.com/google/uuid"
)

type center struct {
	mu    sync.Mutex
	shown map[string]service.ShownNotification
}

// NewCenter creates the in-memory notification tray.
func NewCenter() service.NotificationCenter {
	return &center{shown: map[string]service.ShownNotification{}}
}

func (c *center) Show(n service.ShownNotification) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.ShownAt = time.Now()
	c.shown[n.ID] = n

	return n.ID
}

func (c *center) Get(id string) (service.ShownNotification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.shown[id]

	return n, ok
}

func (c *center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.shown, id)
}
