// Package lifecycle holds shared start/stop constants for long-lived
// components managed through fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations.
const DefaultTimeout = 10 * time.Second
