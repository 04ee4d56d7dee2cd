package space

import "context"

// Inp returns the payload of a tuple matching pattern and attempts to
// unlink it. Concurrent consumers may both read the same tuple; only one
// of their unlinks succeeds, which is the engine's documented
// at-most-one-delivery property rather than exactly-once.
func (s *Space) Inp(ctx context.Context, pattern string, mode Mode) ([]byte, error) {
	return s.poll(ctx, pattern, mode, true)
}
