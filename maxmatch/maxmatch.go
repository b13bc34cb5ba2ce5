package maxmatch

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/pursuit/catch"
)

// Network is the bipartite flow network built from one sequence.
//
// Vertex layout: 0 is the source, 1..P are police, P+1..P+T are thieves,
// P+T+1 is the sink.
type Network struct {
	police  []int // sequence positions, ascending
	thieves []int // sequence positions, ascending
	adj     [][]arc
	flow    int
	solved  bool
}

// NewNetwork classifies seq and builds the unit-capacity network for distance k.
// Markers other than 'P' and 'T' are skipped, as in catch.
func NewNetwork(seq []byte, k int) (*Network, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: k=%d", ErrNegativeDistance, k)
	}
	n := &Network{}
	for i, b := range seq {
		switch catch.Classify(b) {
		case catch.Police:
			n.police = append(n.police, i)
		case catch.Thief:
			n.thieves = append(n.thieves, i)
		}
	}

	// Distances never exceed len(seq); clamping keeps p+k from overflowing.
	reach := k
	if reach > len(seq) {
		reach = len(seq)
	}

	n.adj = make([][]arc, len(n.police)+len(n.thieves)+2)
	src, sink := n.source(), n.sink()
	for pi, p := range n.police {
		n.addArc(src, n.policeVertex(pi))
		// thieves in [p-reach, p+reach], found by binary search on the sorted positions
		lo := sort.SearchInts(n.thieves, p-reach)
		hi := sort.SearchInts(n.thieves, p+reach+1)
		for ti := lo; ti < hi; ti++ {
			n.addArc(n.policeVertex(pi), n.thiefVertex(ti))
		}
	}
	for ti := range n.thieves {
		n.addArc(n.thiefVertex(ti), sink)
	}

	return n, nil
}

// MaxMatching returns the size of a maximum police–thief matching in seq
// under distance k. Returns ErrNegativeDistance if k < 0.
func MaxMatching(seq []byte, k int) (int, error) {
	n, err := NewNetwork(seq, k)
	if err != nil {
		return 0, err
	}

	return n.MaxFlow(context.Background())
}

// MaxFlow runs Dinic's algorithm (level graph + blocking flows) and returns
// the flow value. Cancellation is checked before every phase and every
// augmentation; on cancellation the flow found so far is returned with ctx.Err().
// Calling MaxFlow again after it completed returns the cached value.
func (n *Network) MaxFlow(ctx context.Context) (int, error) {
	if n.solved {
		return n.flow, nil
	}
	src, sink := n.source(), n.sink()
	level := make([]int, len(n.adj))
	iter := make([]int, len(n.adj))
	for {
		if err := ctx.Err(); err != nil {
			return n.flow, err
		}
		if !n.buildLevels(level) {
			break
		}
		for i := range iter {
			iter[i] = 0
		}
		for {
			if err := ctx.Err(); err != nil {
				return n.flow, err
			}
			pushed := n.push(level, iter, src, sink, 1)
			if pushed == 0 {
				break
			}
			n.flow += pushed
		}
	}
	n.solved = true

	return n.flow, nil
}

// Pairs returns the matched pairs of a solved network, ordered by police
// position. It returns nil before MaxFlow completed.
func (n *Network) Pairs() []catch.Pair {
	if !n.solved {
		return nil
	}
	pairs := make([]catch.Pair, 0, n.flow)
	for pi, p := range n.police {
		for _, a := range n.adj[n.policeVertex(pi)] {
			// saturated forward arc police→thief carries one unit of flow
			if a.to > len(n.police) && a.to != n.sink() && a.cap == 0 {
				pairs = append(pairs, catch.Pair{Police: p, Thief: n.thieves[a.to-len(n.police)-1]})
			}
		}
	}

	return pairs
}

// buildLevels fills level with BFS distances from the source over arcs with
// remaining capacity and reports whether the sink is reachable.
func (n *Network) buildLevels(level []int) bool {
	for i := range level {
		level[i] = -1
	}
	src := n.source()
	queue := []int{src}
	level[src] = 0
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range n.adj[u] {
			if a.cap > 0 && level[a.to] < 0 {
				level[a.to] = level[u] + 1
				queue = append(queue, a.to)
			}
		}
	}

	return level[n.sink()] >= 0
}

// push sends up to available units from u to sink along the level graph,
// advancing iter so saturated arcs are not revisited within a phase.
func (n *Network) push(level, iter []int, u, sink, available int) int {
	if u == sink {
		return available
	}
	for ; iter[u] < len(n.adj[u]); iter[u]++ {
		a := &n.adj[u][iter[u]]
		if a.cap <= 0 || level[a.to] != level[u]+1 {
			continue
		}
		send := available
		if a.cap < send {
			send = a.cap
		}
		if pushed := n.push(level, iter, a.to, sink, send); pushed > 0 {
			a.cap -= pushed
			n.adj[a.to][a.rev].cap += pushed

			return pushed
		}
	}

	return 0
}

// addArc adds a unit arc u→v and its zero-capacity reverse.
func (n *Network) addArc(u, v int) {
	n.adj[u] = append(n.adj[u], arc{to: v, cap: 1, rev: len(n.adj[v])})
	n.adj[v] = append(n.adj[v], arc{to: u, cap: 0, rev: len(n.adj[u]) - 1})
}

func (n *Network) source() int            { return 0 }
func (n *Network) sink() int              { return len(n.adj) - 1 }
func (n *Network) policeVertex(i int) int { return 1 + i }
func (n *Network) thiefVertex(i int) int  { return 1 + len(n.police) + i }
