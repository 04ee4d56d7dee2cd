// Package sweep implements the lazy expiry pass run at the head of every
// public tuple-space operation.
//
// Sweeping is O(|D|) and makes no lock acquisitions: it unlinks whatever
// it can and skips, with a debug-level log line, whatever it can't (a peer beat it to the
// unlink, or a permissions error), since these are normal-case races and
// not user-visible failures. A tuple that the sweeper hasn't gotten to
// yet is still never returned to a caller, because internal/match
// applies the same freshness test independently.
package sweep

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/tuplespaced/linda/internal/codec"
)

// Run scans dir and unlinks every tuple whose encoded expiry has passed.
// Errors unlinking individual files are logged at debug level and
// otherwise ignored; Run itself only fails if dir cannot be read at all.
func Run(ctx context.Context, dir string, log *slog.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		p, ok := codec.Parse(name)
		if !ok || !p.ExpiresBefore(now) {
			continue
		}
		path := filepath.Join(dir, name)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.DebugContext(ctx, "sweep: unlink failed", "path", path, "error", err)
			continue
		}
		log.InfoContext(ctx, "sweep: expired tuple removed", "path", path, "expiry", p.Expiry)
	}
	return nil
}
