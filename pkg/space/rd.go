package space

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tuplespaced/linda/internal/match"
	"github.com/tuplespaced/linda/internal/sweep"
)

// Rd returns the payload of a tuple matching pattern without consuming it.
// Behavior when no tuple currently matches is governed by mode.
func (s *Space) Rd(ctx context.Context, pattern string, mode Mode) ([]byte, error) {
	return s.poll(ctx, pattern, mode, false)
}

// poll implements the shared Rd/Inp loop: sweep, match, attempt a read (and
// for consume, an unlink), retrying on an empty or fully-raced candidate
// list until mode says to give up.
func (s *Space) poll(ctx context.Context, pattern string, mode Mode, consume bool) ([]byte, error) {
	if err := sweep.Run(ctx, s.dir, s.log); err != nil {
		return nil, fmt.Errorf("%w: sweep: %v", ErrIO, err)
	}

	var deadline time.Time
	if mode.kind == modeTimeout {
		deadline = time.Now().Add(mode.timeout)
	}

	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
		default:
		}

		candidates, err := match.Find(s.dir, pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: match %q: %v", ErrIO, pattern, err)
		}

		for _, c := range candidates {
			path := filepath.Join(s.dir, c.Basename)
			data, err := os.ReadFile(path)
			if err != nil {
				// A peer consumed or replaced this candidate between match and
				// read; try the next one instead of failing the whole call.
				continue
			}
			if consume {
				if err := os.Remove(path); err != nil {
					s.log.DebugContext(ctx, "inp: unlink raced", "path", path, "error", err)
				}
			}
			return data, nil
		}

		switch mode.kind {
		case modeOnce:
			return nil, ErrNoMatch
		case modeTimeout:
			if time.Now().After(deadline) {
				return nil, ErrTimeout
			}
		}

		if err := s.sleepOrDone(ctx); err != nil {
			return nil, err
		}

		if err := sweep.Run(ctx, s.dir, s.log); err != nil {
			return nil, fmt.Errorf("%w: sweep: %v", ErrIO, err)
		}
	}
}

// sleepOrDone sleeps for s.pollInterval, returning early with a wrapped
// ctx.Err() if ctx is canceled first.
func (s *Space) sleepOrDone(ctx context.Context) error {
	t := time.NewTimer(s.pollInterval)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
	case <-t.C:
		return nil
	}
}
