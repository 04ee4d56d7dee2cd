// Package space implements the tuple space engine: Out, Rd, Inp, Ls, and
// Clear on top of a plain directory, composing internal/codec,
// internal/atomicfile, internal/filelock, internal/seqfile,
// internal/match, and internal/sweep.
package space

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/tuplespaced/linda/internal/config"
)

// pollInterval is the sleep between unsuccessful Rd/Inp poll attempts.
const pollInterval = 100 * time.Millisecond

// Space is an open handle onto a tuple space directory. The zero value is
// not usable; obtain one via Open or Default.
type Space struct {
	dir               string
	lockTimeout       time.Duration
	pollInterval      time.Duration
	lockRetryInterval time.Duration
	log               *slog.Logger
}

// SpaceOption configures a Space at Open time.
type SpaceOption func(*Space)

// WithLogger overrides the default discard logger. Swallowed internal
// races (sweep unlink failures, stale-lock reclamation, Inp's best-effort
// unlink) log at debug level; lock contention and expiry-driven unlinks
// log at info level.
func WithLogger(l *slog.Logger) SpaceOption {
	return func(s *Space) { s.log = l }
}

// Open returns a Space rooted at cfg.Dir, creating the directory if it
// does not already exist.
func Open(cfg config.Config, opts ...SpaceOption) (*Space, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: mkdir %q: %v", ErrIO, cfg.Dir, err)
	}
	poll := cfg.PollInterval
	if poll <= 0 {
		poll = pollInterval
	}
	s := &Space{
		dir:               cfg.Dir,
		lockTimeout:       cfg.LockTimeout,
		pollInterval:      poll,
		lockRetryInterval: cfg.LockRetryInterval,
		log:               slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

var defaultSpace = sync.OnceValue(func() *Space {
	s, err := Open(config.FromEnv())
	if err != nil {
		// config.FromEnv's Dir is either the default "/tmp/linda" or an
		// operator-chosen LINDA_DIR; a failure here means the filesystem
		// itself is unusable, which every caller would hit identically.
		panic(fmt.Sprintf("space: open default space: %v", err))
	}
	return s
})

// Default returns the ambient Space for the process, opened on first use
// from LINDA_DIR (or /tmp/linda). The same handle is returned on every
// call.
func Default() *Space { return defaultSpace() }

// Close releases any resources held by s. Space holds no open file
// descriptors between calls, so Close is a no-op kept for symmetry with
// embedders that want a deterministic shutdown hook.
func (s *Space) Close() error { return nil }

// Dir returns the directory s is rooted at, for frontends that need to
// inspect tuple metadata (e.g. expiry) beyond what Out/Rd/Inp/Ls/Clear
// expose directly.
func (s *Space) Dir() string { return s.dir }
