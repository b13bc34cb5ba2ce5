package maxmatch

import (
	"fmt"

	"github.com/katalvlaran/pursuit/catch"
)

// ErrNegativeDistance is returned when k < 0. It also matches catch.ErrNegativeDistance.
var ErrNegativeDistance = fmt.Errorf("maxmatch: %w", catch.ErrNegativeDistance)

// arc is one directed residual edge; rev indexes its reverse arc in adj[to].
type arc struct {
	to  int
	cap int
	rev int
}
