// Package seqfile allocates strictly increasing, per-name FIFO sequence
// tokens backed by a companion file in the tuple space.
//
// The counter for name "q" lives in ".q.seq" as 8-digit zero-padded
// ASCII decimal. Every
// allocation is performed under the cross-process lock from
// internal/filelock so that concurrent producers never hand out the
// same token twice.
package seqfile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/tuplespaced/linda/internal/atomicfile"
	"github.com/tuplespaced/linda/internal/codec"
	"github.com/tuplespaced/linda/internal/filelock"
)

// MaxSeq is the point at which the 8-digit counter wraps. Callers that
// exceed it must reset the space via Clear; behavior beyond this point
// is undefined.
const MaxSeq = 100_000_000 // 10^8

// Next allocates and returns the next sequence token for name (the bare
// digits, without a leading "-") in dir, e.g. "00000001". lockRetryInterval
// and log are forwarded to internal/filelock.Acquire so contention and
// stale-lock reclamation on the sequence file's lock are observable.
func Next(dir, name string, lockTimeout, lockRetryInterval time.Duration, log *slog.Logger) (string, error) {
	seqPath := filepath.Join(dir, "."+name+".seq")
	lockPath := seqPath + ".lock"

	lock, err := filelock.Acquire(lockPath, lockTimeout, lockRetryInterval, log)
	if err != nil {
		return "", fmt.Errorf("seqfile: acquire lock for %q: %w", name, err)
	}
	defer lock.Release()

	cur, err := readCounter(seqPath)
	if err != nil {
		return "", fmt.Errorf("seqfile: read %q: %w", seqPath, err)
	}

	next := cur + 1
	if next >= MaxSeq {
		next = next % MaxSeq
	}

	if err := atomicfile.Write(seqPath, []byte(codec.ZeroPadSeq(next))); err != nil {
		return "", fmt.Errorf("seqfile: write %q: %w", seqPath, err)
	}

	return codec.ZeroPadSeq(next), nil
}

func readCounter(path string) (int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	s := strings.TrimSpace(string(data))
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed counter %q: %w", s, err)
	}
	return n, nil
}
