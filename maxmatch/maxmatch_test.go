package maxmatch_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pursuit/catch"
	"github.com/katalvlaran/pursuit/maxmatch"
)

// MaxMatchSuite exercises the max-flow matcher under various scenarios.
type MaxMatchSuite struct {
	suite.Suite
}

// TestAlternating verifies the two reference answers for "PTPT".
func (s *MaxMatchSuite) TestAlternating() {
	n, err := maxmatch.MaxMatching([]byte("PTPT"), 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, n)

	n, err = maxmatch.MaxMatching([]byte("PTPT"), 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, n)
}

// TestEmpty verifies that a network without entities carries no flow.
func (s *MaxMatchSuite) TestEmpty() {
	n, err := maxmatch.MaxMatching(nil, 4)
	require.NoError(s.T(), err)
	require.Zero(s.T(), n)
}

// TestContestedThief needs P1 to take T0 so that P3 can still take T2.
func (s *MaxMatchSuite) TestContestedThief() {
	n, err := maxmatch.MaxMatching([]byte("TPTP"), 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, n)
}

// TestHugeDistance ensures k = MaxInt does not overflow the range search.
func (s *MaxMatchSuite) TestHugeDistance() {
	n, err := maxmatch.MaxMatching([]byte("PT.TP"), math.MaxInt)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, n)
}

// TestNegativeDistance matches both the local and the catch sentinel.
func (s *MaxMatchSuite) TestNegativeDistance() {
	_, err := maxmatch.MaxMatching([]byte("PT"), -1)
	require.ErrorIs(s.T(), err, maxmatch.ErrNegativeDistance)
	require.ErrorIs(s.T(), err, catch.ErrNegativeDistance)
}

// TestPairs checks that the reported pairs are valid and complete.
func (s *MaxMatchSuite) TestPairs() {
	seq := []byte("TTPP.PT")
	net, err := maxmatch.NewNetwork(seq, 2)
	require.NoError(s.T(), err)
	require.Nil(s.T(), net.Pairs(), "no pairs before MaxFlow")

	n, err := net.MaxFlow(context.Background())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, n)

	pairs := net.Pairs()
	require.Len(s.T(), pairs, n)
	used := map[int]bool{}
	for _, p := range pairs {
		require.Equal(s.T(), catch.Police, catch.Classify(seq[p.Police]))
		require.Equal(s.T(), catch.Thief, catch.Classify(seq[p.Thief]))
		require.LessOrEqual(s.T(), p.Distance(), 2)
		require.False(s.T(), used[p.Police] || used[p.Thief])
		used[p.Police], used[p.Thief] = true, true
	}

	again, err := net.MaxFlow(context.Background())
	require.NoError(s.T(), err)
	require.Equal(s.T(), n, again, "solved network returns the cached flow")
}

// TestCanceled returns the context error before any phase runs.
func (s *MaxMatchSuite) TestCanceled() {
	net, err := maxmatch.NewNetwork([]byte("PTPT"), 1)
	require.NoError(s.T(), err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, err := net.MaxFlow(ctx)
	require.ErrorIs(s.T(), err, context.Canceled)
	require.Zero(s.T(), n)
	require.Nil(s.T(), net.Pairs())
}

func TestMaxMatchSuite(t *testing.T) {
	suite.Run(t, new(MaxMatchSuite))
}
