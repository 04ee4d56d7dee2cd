package space

import "time"

// outConfig is the resolved set of Out options for one call.
type outConfig struct {
	ttl time.Duration
	seq bool
	rep bool
}

// OutOption configures a single Out call. Options compose via functional
// options, in the teacher's style of small setter closures rather than a
// variadic struct literal.
type OutOption func(*outConfig) error

// WithTTL sets the tuple's time-to-live. A zero duration means "never
// expires" (the default), so WithTTL(0) is a harmless no-op; a negative
// duration is rejected with ErrInvalidArgument.
func WithTTL(d time.Duration) OutOption {
	return func(c *outConfig) error {
		if d < 0 {
			return ErrInvalidArgument
		}
		c.ttl = d
		return nil
	}
}

// WithSeq requests a FIFO sequence token for the tuple, allocated from
// the per-name counter in internal/seqfile. Mutually exclusive with
// WithRep.
func WithSeq() OutOption {
	return func(c *outConfig) error {
		if c.rep {
			return ErrInvalidArgument
		}
		c.seq = true
		return nil
	}
}

// WithRep selects replacement mode: the tuple's filename carries no
// random disambiguator, so a later WithRep Out for the same name
// overwrites this one via atomic rename. Mutually exclusive with
// WithSeq.
func WithRep() OutOption {
	return func(c *outConfig) error {
		if c.seq {
			return ErrInvalidArgument
		}
		c.rep = true
		return nil
	}
}
