// Package filelock implements a named cross-process mutex on top of
// exclusive file creation.
//
// Unlike flock(2)-based locking, exclusive create (O_CREATE|O_EXCL) is
// portable across POSIX filesystems, including most networked ones, and
// survives an ungraceful peer crash: the lock sentinel records the
// holder's pid, and a contender that finds an existing sentinel probes
// that pid for liveness before waiting on it.
//
// filelock is used by the sequence allocator only. Tuple reads and
// writes elsewhere in the engine are deliberately lock-free.
package filelock

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"golang.org/x/sys/unix"
)

// DefaultTimeout is the conventional lock-acquire timeout, per §4.4.
// Acquire does not apply it itself; it always waits for the timeout its
// caller passes.
const DefaultTimeout = 5 * time.Second

// DefaultRetryInterval is the sleep between acquire attempts used when
// the caller passes a non-positive retryInterval.
const DefaultRetryInterval = 50 * time.Millisecond

// Lock is a held advisory lock. The zero value is not usable; obtain one
// via Acquire.
type Lock struct {
	path string
}

// Acquire creates path exclusively within timeout, reclaiming the
// sentinel if its recorded holder is no longer alive. It returns
// ErrTimeout if the deadline elapses without acquiring the lock.
//
// retryInterval governs the sleep between contended attempts; a
// non-positive value falls back to DefaultRetryInterval. log receives
// lock-contention (info) and stale-lock-reclamation (debug) events; a
// nil log is treated as a discard logger.
func Acquire(path string, timeout, retryInterval time.Duration, log *slog.Logger) (*Lock, error) {
	if retryInterval <= 0 {
		retryInterval = DefaultRetryInterval
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	deadline := time.Now().Add(timeout)
	contended := false
	for {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			_, werr := fmt.Fprintf(f, "%d", os.Getpid())
			cerr := f.Close()
			if werr != nil || cerr != nil {
				os.Remove(path)
				if werr != nil {
					return nil, fmt.Errorf("filelock: write pid: %w", werr)
				}
				return nil, fmt.Errorf("filelock: close: %w", cerr)
			}
			return &Lock{path: path}, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("filelock: create: %w", err)
		}

		if reclaimStale(path, log) {
			continue // retry immediately now that the sentinel is gone
		}

		if !contended {
			contended = true
			log.Info("filelock: contended, retrying past first attempt", "path", path)
		}

		if time.Now().After(deadline) {
			return nil, ErrTimeout
		}
		time.Sleep(retryInterval)
	}
}

// Release unlinks the lock sentinel, ignoring errors: a release racing
// against a reclamation by another process is a normal-case outcome, not
// a failure.
func (l *Lock) Release() {
	if l == nil {
		return
	}
	_ = os.Remove(l.path)
}

// reclaimStale inspects an existing lock sentinel and removes it if its
// recorded pid is malformed or no longer alive. It reports whether it
// removed the sentinel (in which case the caller should retry creation
// immediately rather than sleeping).
func reclaimStale(path string, log *slog.Logger) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		// Sentinel vanished between our failed create and this read —
		// another process is racing us; let the next create attempt sort
		// it out.
		return false
	}

	pid, err := strconv.Atoi(string(data))
	if err != nil {
		log.Debug("filelock: reclaiming malformed lock sentinel", "path", path, "error", err)
		_ = os.Remove(path)
		return true
	}

	if isAlive(pid) {
		return false
	}
	log.Debug("filelock: reclaiming stale lock sentinel", "path", path, "pid", pid)
	_ = os.Remove(path)
	return true
}

// isAlive reports whether pid refers to a live process on this host, via
// the standard kill(pid, 0) liveness probe: signal 0 performs the
// permission/existence checks without actually delivering a signal.
func isAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := unix.Kill(pid, 0)
	if err == nil {
		return true
	}
	if err == unix.ESRCH {
		return false
	}
	// EPERM means the process exists but we can't signal it — still alive.
	return true
}
