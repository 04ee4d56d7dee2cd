package space

import "errors"

// The error taxonomy is deliberately small and sentinel-based so callers
// can classify failures with errors.Is regardless of which internal
// component produced them. Every exported operation returns one of these,
// either bare or wrapped with %w. The underlying filesystem or lock error,
// where there is one, appears only in the message text; it is not part of
// the unwrap chain.
var (
	// ErrInvalidArgument covers malformed names, negative TTLs, unknown
	// modes, and mutually exclusive Out options.
	ErrInvalidArgument = errors.New("linda: invalid argument")

	// ErrNoMatch is returned by a ModeOnce Rd/Inp that found nothing.
	ErrNoMatch = errors.New("linda: no matching tuple")

	// ErrTimeout is returned by a ModeTimeout Rd/Inp whose deadline
	// elapsed, by a canceled context, or by a sequence-allocation lock
	// acquisition that exceeded its budget.
	ErrTimeout = errors.New("linda: timed out")

	// ErrIO covers unexpected filesystem errors: disk full, permission
	// denied, or a tuple directory that is missing and uncreatable.
	ErrIO = errors.New("linda: io error")
)
