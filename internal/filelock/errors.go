package filelock

import "errors"

// ErrTimeout is returned by Acquire when the lock could not be obtained
// before the deadline.
var ErrTimeout = errors.New("filelock: timed out acquiring lock")
