// Package lifecycle holds limits shared by fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single lifecycle hook.
const DefaultTimeout = 10 * time.Second
