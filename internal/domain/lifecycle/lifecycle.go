// Package lifecycle holds process lifecycle constants shared by the
// delivery servers.
package lifecycle

import (
	"time"
)

// DefaultTimeout bounds graceful shutdown of a delivery server.
const DefaultTimeout = 10 * time.Second
