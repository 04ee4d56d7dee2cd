// Package config resolves the tuple space's environment-provided
// settings: the directory path and the test-only timing overrides.
//
// LINDA_DIR has lifecycle "read once at engine init" — see DESIGN.md for
// why that's exposed as an explicit struct here rather than read ad hoc
// wherever a constant is needed, mirroring the teacher's envOr-at-open
// pattern generalized into its own package.
package config

import (
	"os"
	"time"
)

// DefaultDir is used when LINDA_DIR is unset.
const DefaultDir = "/tmp/linda"

// Config holds the resolved, process-wide tuple space settings.
type Config struct {
	// Dir is the tuple space directory.
	Dir string
	// LockTimeout bounds internal/filelock.Acquire. Defaults to 5s.
	LockTimeout time.Duration
	// PollInterval is the sleep between Rd/Inp poll attempts. Defaults
	// to 100ms.
	PollInterval time.Duration
	// LockRetryInterval is the sleep between filelock acquire attempts.
	// Defaults to 50ms.
	LockRetryInterval time.Duration
}

// FromEnv resolves a Config from the environment, falling back to
// production defaults for anything unset. LINDA_LOCK_TIMEOUT and
// LINDA_POLL_INTERVAL are test-only overrides (parsed with
// time.ParseDuration); malformed values are ignored in favor of the
// default.
func FromEnv() Config {
	cfg := Config{
		Dir:               envOr("LINDA_DIR", DefaultDir),
		LockTimeout:       5 * time.Second,
		PollInterval:      100 * time.Millisecond,
		LockRetryInterval: 50 * time.Millisecond,
	}
	if d, ok := envDuration("LINDA_LOCK_TIMEOUT"); ok {
		cfg.LockTimeout = d
	}
	if d, ok := envDuration("LINDA_POLL_INTERVAL"); ok {
		cfg.PollInterval = d
	}
	return cfg
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string) (time.Duration, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, false
	}
	return d, true
}
