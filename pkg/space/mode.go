package space

import "time"

// Mode selects how Rd and Inp behave when no tuple currently matches.
type Mode struct {
	kind    modeKind
	timeout time.Duration
}

type modeKind int

const (
	modeWait modeKind = iota
	modeOnce
	modeTimeout
)

// ModeWait blocks forever until a match appears. It is the default mode
// (the zero Mode).
func ModeWait() Mode { return Mode{kind: modeWait} }

// ModeOnce attempts a single match and fails with ErrNoMatch if the
// space currently holds nothing that matches.
func ModeOnce() Mode { return Mode{kind: modeOnce} }

// ModeTimeout polls until at least d has elapsed since the call began,
// then fails with ErrTimeout. Timeout resolution is bounded by the
// poll interval (~100ms by default).
func ModeTimeout(d time.Duration) Mode { return Mode{kind: modeTimeout, timeout: d} }
