package main

import (
	"time"

	"github.com/tuplespaced/linda/pkg/space"
)

// resolveMode maps the --once/--timeout flags shared by rd and inp onto a
// space.Mode. --once takes precedence if both are set.
func resolveMode(once bool, timeoutSec int) space.Mode {
	switch {
	case once:
		return space.ModeOnce()
	case timeoutSec > 0:
		return space.ModeTimeout(time.Duration(timeoutSec) * time.Second)
	default:
		return space.ModeWait()
	}
}
