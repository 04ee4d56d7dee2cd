// Package codec encodes and decodes tuple filenames.
//
// A tuple's entire protocol lives in its filename:
//
//	name ( "-" seq )? ( "-" rand )? ( "." expiry )?
//
// seq is an 8-digit zero-padded FIFO counter, rand is an 8-character
// lowercase hex disambiguator, and expiry is a decimal unix timestamp.
// At least one of seq or rand must be present unless the tuple is in
// replacement mode, in which case the filename is bare (optionally with
// an expiry suffix).
//
// Sequence files (".<name>.seq"), lock sentinels ("<path>.lock") and
// temporary files ("<final>.tmp.<pid>.<hex>") are engine-private: their
// basenames begin with "." or carry a ".lock"/".tmp." suffix, and Parse
// rejects them so matchers never mistake them for tuples.
package codec

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SeqWidth is the fixed width of the zero-padded FIFO counter.
const SeqWidth = 8

// RandWidth is the length, in hex characters, of the random disambiguator.
const RandWidth = 8

// Parsed is the decoded form of a tuple filename.
type Parsed struct {
	Name   string
	Seq    string // zero-padded digits, without the leading "-"; "" if absent
	Rand   string // lowercase hex, without the leading "-"; "" if absent
	Expiry int64  // unix seconds; 0 means "never expires"
}

// Build composes a tuple filename from its fields. Expiry of 0 means no
// expiry suffix is emitted. The caller is responsible for ensuring at
// least one of seq/rand is set unless replacement mode (both empty) is
// intended.
func Build(name, seq, rand string, expiry int64) string {
	var b strings.Builder
	b.WriteString(name)
	if seq != "" {
		b.WriteByte('-')
		b.WriteString(seq)
	}
	if rand != "" {
		b.WriteByte('-')
		b.WriteString(rand)
	}
	if expiry != 0 {
		b.WriteByte('.')
		b.WriteString(strconv.FormatInt(expiry, 10))
	}
	return b.String()
}

// NewRand returns a fresh RandWidth-character lowercase hex disambiguator,
// drawn from uuid.New()'s crypto/rand-backed generator. Collisions are
// tolerated by the atomic writer (an unlucky collision is simply
// overwritten) but the source must be strong enough to make them
// vanishingly unlikely, which a UUID's 122 bits of randomness easily
// satisfies even truncated to 32 bits here.
func NewRand() string {
	id := uuid.New()
	hex := strings.ReplaceAll(id.String(), "-", "")
	return hex[:RandWidth]
}

// ZeroPadSeq renders a sequence counter as an 8-digit zero-padded string.
func ZeroPadSeq(n int64) string {
	return fmt.Sprintf("%0*d", SeqWidth, n)
}

// ValidateName reports whether name is a legal tuple identity: non-empty
// and free of '-' and '.'.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if strings.ContainsAny(name, "-.") {
		return fmt.Errorf("name %q must not contain '-' or '.'", name)
	}
	return nil
}

// IsPrivate reports whether basename is engine-private: a sequence file,
// a lock sentinel, or a temporary write-in-progress file. Private files
// are ignored by matchers and Ls.
func IsPrivate(basename string) bool {
	if strings.HasPrefix(basename, ".") {
		return true
	}
	if strings.HasSuffix(basename, ".lock") {
		return true
	}
	if strings.Contains(basename, ".tmp.") {
		return true
	}
	return false
}

// Parse decodes basename into its tuple fields. It returns false if
// basename is engine-private or otherwise does not look like a tuple.
//
// The "-"-separated remainder after stripping any expiry suffix is split
// into fields (name never contains '-'). With three fields, position
// decides: name, then seq, then rand. With two fields, the second is
// classified by content: eight decimal digits read as seq, any other
// eight lowercase hex characters as rand, so a lone all-digit rand is
// reported as seq.
func Parse(basename string) (Parsed, bool) {
	if IsPrivate(basename) || basename == "" {
		return Parsed{}, false
	}

	rest := basename
	var expiry int64
	if dot := strings.LastIndexByte(rest, '.'); dot >= 0 {
		expStr := rest[dot+1:]
		if n, err := strconv.ParseInt(expStr, 10, 64); err == nil && expStr != "" {
			expiry = n
			rest = rest[:dot]
		}
		// A '.' that doesn't parse as a decimal expiry means this isn't a
		// well-formed tuple filename at all (e.g. a stray dotfile variant).
	}

	parts := strings.Split(rest, "-")
	var name, seq, rnd string
	switch len(parts) {
	case 1:
		name = parts[0]
	case 2:
		name = parts[0]
		switch {
		case isSeqField(parts[1]):
			seq = parts[1]
		case isRandField(parts[1]):
			rnd = parts[1]
		default:
			return Parsed{}, false
		}
	case 3:
		name, seq, rnd = parts[0], parts[1], parts[2]
		if !isSeqField(seq) || !isRandField(rnd) {
			return Parsed{}, false
		}
	default:
		return Parsed{}, false
	}

	if err := ValidateName(name); err != nil {
		return Parsed{}, false
	}

	return Parsed{Name: name, Seq: seq, Rand: rnd, Expiry: expiry}, true
}

// ExpiresBefore reports whether p is expired as of now.
func (p Parsed) ExpiresBefore(now time.Time) bool {
	return p.Expiry != 0 && now.Unix() >= p.Expiry
}

func isSeqField(s string) bool {
	if len(s) != SeqWidth {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isRandField(s string) bool {
	if len(s) != RandWidth {
		return false
	}
	for _, c := range s {
		if !(c >= '0' && c <= '9') && !(c >= 'a' && c <= 'f') {
			return false
		}
	}
	return true
}
