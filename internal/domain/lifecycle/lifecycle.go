// Package lifecycle holds shared constants for process start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as DB pings and HTTP shutdown.
const DefaultTimeout = 10 * time.Second
