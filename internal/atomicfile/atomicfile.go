// Package atomicfile writes files into the tuple space so that readers
// never observe a partially written payload.
//
// The technique is the standard one: write the full payload to a
// uniquely named temporary file in the same directory as the final
// path, then rename it over the final path. Same-directory rename is a
// single atomic filesystem operation on every POSIX filesystem the
// engine targets, so a concurrent reader either sees the complete file
// or sees nothing.
package atomicfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Write atomically creates path with contents data. path's parent
// directory must already exist. On success, a concurrent reader that
// opens path observes either the full contents of data or a
// not-found error — never a partial write.
func Write(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf("%s.tmp.%d.%s",
		filepath.Base(path), os.Getpid(), shortHex()))

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("atomicfile: create temp: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("atomicfile: write temp: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("atomicfile: sync temp: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("atomicfile: close temp: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("atomicfile: rename: %w", err)
	}
	return nil
}

func shortHex() string {
	id := uuid.New()
	s := id.String()
	return s[:8]
}
