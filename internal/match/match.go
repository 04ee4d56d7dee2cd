// Package match enumerates a tuple space directory for entries that
// satisfy a name pattern and are not expired, in a deterministic order.
package match

import (
	"os"
	"sort"
	"strings"
	"time"

	"github.com/tuplespaced/linda/internal/codec"
)

// Candidate is a live, matching tuple file.
type Candidate struct {
	Basename string
	Parsed   codec.Parsed
}

// Find enumerates dir for non-private, non-expired entries whose decoded
// name starts with pattern (a trailing "*", if present, is stripped — the
// engine fixes on prefix matching per the distilled spec's own
// recommendation for the undocumented wildcard). Results are sorted
// lexicographically ascending on filename, which for a shared name using
// fixed-width seq tokens is identical to FIFO insertion order.
func Find(dir, pattern string) ([]Candidate, error) {
	prefix := strings.TrimSuffix(pattern, "*")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var out []Candidate
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		p, ok := codec.Parse(name)
		if !ok {
			continue
		}
		if !strings.HasPrefix(p.Name, prefix) {
			continue
		}
		if p.ExpiresBefore(now) {
			continue
		}
		out = append(out, Candidate{Basename: name, Parsed: p})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Basename < out[j].Basename })
	return out, nil
}
