// Package lifecycle holds timing constants shared by startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdowns.
const DefaultTimeout = 10 * time.Second
