// Package lifecycle holds shared timeouts for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdowns.
const DefaultTimeout = 10 * time.Second
