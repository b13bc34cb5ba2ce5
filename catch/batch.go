package catch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// CountAll runs Count over every sequence of seqs with the same k and
// returns the counts in input order.
//
// Sequences are processed concurrently, at most limit at a time
// (limit <= 0 means no limit). Cancelling ctx stops the sequences not yet
// started and CountAll returns the context error.
func CountAll(ctx context.Context, seqs [][]byte, k, limit int) ([]int, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: k=%d", ErrNegativeDistance, k)
	}
	counts := make([]int, len(seqs))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, seq := range seqs {
		i, seq := i, seq
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			n, err := Count(seq, k)
			if err != nil {
				return fmt.Errorf("sequence %d: %w", i, err)
			}
			counts[i] = n

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return counts, nil
}
