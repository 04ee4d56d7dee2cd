package space

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/tuplespaced/linda/internal/atomicfile"
	"github.com/tuplespaced/linda/internal/codec"
	"github.com/tuplespaced/linda/internal/filelock"
	"github.com/tuplespaced/linda/internal/seqfile"
	"github.com/tuplespaced/linda/internal/sweep"
)

// Out publishes a new tuple under name with payload data. By default the
// tuple carries a random disambiguator and never expires; opts select a
// FIFO sequence token (WithSeq), replacement semantics (WithRep), or a
// time-to-live (WithTTL).
func (s *Space) Out(ctx context.Context, name string, data []byte, opts ...OutOption) error {
	if err := codec.ValidateName(name); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	var oc outConfig
	for _, opt := range opts {
		if err := opt(&oc); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
	}

	if err := sweep.Run(ctx, s.dir, s.log); err != nil {
		return fmt.Errorf("%w: sweep: %v", ErrIO, err)
	}

	var seq string
	if oc.seq {
		var err error
		seq, err = seqfile.Next(s.dir, name, s.lockTimeout, s.lockRetryInterval, s.log)
		if err != nil {
			if errors.Is(err, filelock.ErrTimeout) {
				return fmt.Errorf("%w: seq allocation: %v", ErrTimeout, err)
			}
			return fmt.Errorf("%w: seq allocation: %v", ErrIO, err)
		}
	}

	var rnd string
	if !oc.rep {
		rnd = codec.NewRand()
	}

	var expiry int64
	if oc.ttl > 0 {
		expiry = time.Now().Add(oc.ttl).Unix()
	}

	filename := codec.Build(name, seq, rnd, expiry)
	path := filepath.Join(s.dir, filename)

	if err := atomicfile.Write(path, data); err != nil {
		return fmt.Errorf("%w: write %q: %v", ErrIO, path, err)
	}
	return nil
}
