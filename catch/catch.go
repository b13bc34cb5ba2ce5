package catch

import "fmt"

// scanner holds the mutable state of one left-to-right pass.
type scanner struct {
	k       int
	opts    Options
	pending [Thief + 1]positionQueue // indexed by Kind; Other stays unused
	res     *Result
}

// Count returns the maximum number of police–thief pairs in seq whose
// positions differ by at most k, each entity used at most once.
//
// Markers other than 'P' and 'T' are skipped. An empty seq yields 0.
// Returns ErrNegativeDistance if k < 0.
//
// Example:
//
//	n, _ := Count([]byte("PTPT"), 1) // n == 2
func Count(seq []byte, k int) (int, error) {
	res, err := Match(seq, k)
	if err != nil {
		return 0, err
	}

	return res.Count(), nil
}

// Match runs the greedy scan over seq and returns every pair it forms,
// applying any number of functional Options.
// Returns ErrNegativeDistance for k < 0, ErrOptionViolation for bad options,
// or ErrUnknownSymbol for a foreign marker when WithStrict is set.
// In strict mode the whole input is checked before the scan, so no hook
// fires for an input that is rejected.
func Match(seq []byte, k int, opts ...Option) (*Result, error) {
	s, err := newScanner(len(seq), k, opts)
	if err != nil {
		return nil, err
	}
	if s.opts.Strict {
		for i, b := range seq {
			if Classify(b) == Other {
				return nil, fmt.Errorf("%w: %q at position %d", ErrUnknownSymbol, b, i)
			}
		}
	}
	for i, b := range seq {
		s.step(Classify(b), i)
	}

	return s.res, nil
}

// MatchKinds is Match over entities that are already classified.
// Strict mode rejects Other entities and any value outside the Kind constants
// before the scan starts; otherwise both are skipped.
func MatchKinds(kinds []Kind, k int, opts ...Option) (*Result, error) {
	s, err := newScanner(len(kinds), k, opts)
	if err != nil {
		return nil, err
	}
	if s.opts.Strict {
		for i, kind := range kinds {
			if kind == Other || kind > Thief {
				return nil, fmt.Errorf("%w: kind %d at position %d", ErrUnknownSymbol, uint8(kind), i)
			}
		}
	}
	for i, kind := range kinds {
		if kind > Thief {
			continue
		}
		s.step(kind, i)
	}

	return s.res, nil
}

// newScanner validates k and the options and prepares empty queues.
func newScanner(n, k int, opts []Option) (*scanner, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: k=%d", ErrNegativeDistance, k)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := &scanner{
		k:    k,
		opts: o,
		res:  &Result{Pairs: make([]Pair, 0, n/2)},
	}
	// a pending queue never holds more than n positions
	hint := min(o.CapacityHint, n)
	s.pending[Police] = newPositionQueue(hint)
	s.pending[Thief] = newPositionQueue(hint)

	return s, nil
}

// step processes the entity of the given kind at index i.
//
// Positions more than k behind i are dropped from the opposite queue first;
// the expiry is unconditional and happens before the match check. Then the
// oldest surviving opposite position, if any, is consumed; otherwise i waits.
func (s *scanner) step(kind Kind, i int) {
	if kind == Other {
		return
	}
	other := kind.opposite()
	waiting := &s.pending[other]

	// i - front never overflows, unlike front + k.
	for front, ok := waiting.Front(); ok && i-front > s.k; front, ok = waiting.Front() {
		waiting.Pop()
		s.opts.OnExpire(other, front)
	}

	j, ok := waiting.Pop()
	if !ok {
		s.pending[kind].Push(i)

		return
	}

	p := Pair{Police: j, Thief: i}
	if kind == Police {
		p = Pair{Police: i, Thief: j}
	}
	s.res.Pairs = append(s.res.Pairs, p)
	s.opts.OnMatch(p)
}
