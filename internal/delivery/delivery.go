// Package delivery defines the contract every transport server fulfills.
package delivery

import (
	"context"
)

// Delivery is a long-running transport server. Serve blocks until shutdown.
type Delivery interface {
	Serve(ctx context.Context) error
}
