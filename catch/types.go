package catch

import (
	"errors"
	"fmt"
)

// Sentinel errors for catch execution.
var (
	// ErrNegativeDistance is returned when the catch distance k is below zero.
	ErrNegativeDistance = errors.New("catch: distance must be non-negative")

	// ErrUnknownSymbol is returned in strict mode for a marker other than 'P' or 'T'.
	ErrUnknownSymbol = errors.New("catch: unknown symbol")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("catch: invalid option supplied")
)

// Markers recognized in a raw sequence.
const (
	PoliceSymbol byte = 'P'
	ThiefSymbol  byte = 'T'
)

// Kind classifies a single entity of the sequence.
type Kind uint8

const (
	// Other marks a cell with neither police nor thief; it is skipped.
	Other Kind = iota

	// Police marks a police officer.
	Police

	// Thief marks a thief.
	Thief
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Police:
		return "Police"
	case Thief:
		return "Thief"
	default:
		return "Other"
	}
}

// opposite returns the kind a k entity can be matched with.
func (k Kind) opposite() Kind {
	switch k {
	case Police:
		return Thief
	case Thief:
		return Police
	default:
		return Other
	}
}

// Classify maps a raw marker to its Kind.
func Classify(b byte) Kind {
	switch b {
	case PoliceSymbol:
		return Police
	case ThiefSymbol:
		return Thief
	default:
		return Other
	}
}

// Pair is one catch: the positions of the police officer and the thief.
type Pair struct {
	Police int
	Thief  int
}

// Distance returns |Police - Thief|.
func (p Pair) Distance() int {
	if p.Police > p.Thief {
		return p.Police - p.Thief
	}

	return p.Thief - p.Police
}

// Result holds the pairs formed by a scan, in the order they were formed.
type Result struct {
	Pairs []Pair
}

// Count returns the number of catches.
func (r *Result) Count() int {
	if r == nil {
		return 0
	}

	return len(r.Pairs)
}

// Option configures a scan via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when Match is invoked.
type Option func(*Options)

// Options holds callbacks and switches for a scan.
type Options struct {
	// OnMatch is called once for every pair, right after it is formed.
	OnMatch func(p Pair)

	// OnExpire is called for every pending position dropped because it is
	// more than k behind the current index.
	OnExpire func(kind Kind, pos int)

	// Strict rejects any marker other than 'P' and 'T' with ErrUnknownSymbol.
	Strict bool

	// CapacityHint preallocates each pending queue, capped at the input
	// length. Zero means grow on demand.
	CapacityHint int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - no-op hooks (OnMatch, OnExpire)
//   - permissive parsing (unknown markers are skipped)
//   - queues growing on demand.
func DefaultOptions() Options {
	return Options{
		OnMatch:  func(Pair) {},
		OnExpire: func(Kind, int) {},
	}
}

// WithOnMatch registers a callback to run on every match.
func WithOnMatch(fn func(p Pair)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMatch = fn
		}
	}
}

// WithOnExpire registers a callback to run on every expired position.
func WithOnExpire(fn func(kind Kind, pos int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpire = fn
		}
	}
}

// WithStrict makes the scan fail on markers other than 'P' and 'T'.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithCapacityHint preallocates room for n positions in each pending queue.
//
//	n >= 0: use n
//	n < 0:  invalid option → ErrOptionViolation
func WithCapacityHint(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: CapacityHint cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.CapacityHint = n
	}
}
