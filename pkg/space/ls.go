package space

import (
	"context"
	"fmt"
	"sort"

	"github.com/tuplespaced/linda/internal/match"
	"github.com/tuplespaced/linda/internal/sweep"
)

// Count is one entry in Ls's result: the logical name, how many live
// tuples currently carry it, and the soonest expiry among them (0 if no
// tuple in the group carries a TTL).
type Count struct {
	Name   string
	N      int
	Expiry int64
}

// Ls enumerates the tuples matching pattern, grouped by logical name, in
// lexicographic order by name. It never blocks and never mutates D beyond
// the routine expiry sweep every operation performs.
func (s *Space) Ls(pattern string) ([]Count, error) {
	ctx := context.Background()
	if err := sweep.Run(ctx, s.dir, s.log); err != nil {
		return nil, fmt.Errorf("%w: sweep: %v", ErrIO, err)
	}

	candidates, err := match.Find(s.dir, pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: match %q: %v", ErrIO, pattern, err)
	}

	counts := make(map[string]int)
	expiries := make(map[string]int64)
	for _, c := range candidates {
		counts[c.Parsed.Name]++
		if c.Parsed.Expiry == 0 {
			continue
		}
		if cur, ok := expiries[c.Parsed.Name]; !ok || c.Parsed.Expiry < cur {
			expiries[c.Parsed.Name] = c.Parsed.Expiry
		}
	}

	out := make([]Count, 0, len(counts))
	for name, n := range counts {
		out = append(out, Count{Name: name, N: n, Expiry: expiries[name]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
