package space

import (
	"fmt"
	"os"
	"path/filepath"
)

// Clear unlinks every file in D, including sequence counters, stale lock
// sentinels, and stray temporaries. Per-file errors are ignored; Clear is
// intended for tests and maintenance and is not atomic with respect to
// concurrent peers.
func (s *Space) Clear() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("%w: readdir %q: %v", ErrIO, s.dir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		_ = os.Remove(filepath.Join(s.dir, e.Name()))
	}
	return nil
}
