package builder

import (
	"fmt"

	"github.com/katalvlaran/graphbench/graph"
)

// validateCounts checks (n, m) against the contract of the named method.
// connected additionally requires m ≥ n-1.
//
// Complexity: O(1) time and space.
func validateCounts(method string, n, m int, connected bool) error {
	if n < minVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minVertices, ErrTooFewVertices)
	}
	if n > graph.MaxVertices {
		return fmt.Errorf("%s: n=%d > max=%d: %w", method, n, graph.MaxVertices, ErrTooManyVertices)
	}
	if m < 0 {
		return fmt.Errorf("%s: m=%d: %w", method, m, ErrNegativeEdges)
	}
	if n == 1 && m != 0 {
		return fmt.Errorf("%s: n=1, m=%d: %w", method, m, ErrSingleVertexEdges)
	}
	if connected && m < n-1 {
		return fmt.Errorf("%s: m=%d < n-1=%d: %w", method, m, n-1, ErrTooFewEdges)
	}
	if limit := graph.MaxEdges(n); int64(m) > limit {
		return fmt.Errorf("%s: m=%d > max=%d: %w", method, m, limit, ErrTooManyEdges)
	}
	return nil
}
