// SPDX-License-Identifier: MIT
// Package: graphbench/builder
//
// impl_connected.go - implementation of Connected(n, m) constructor.
//
// Contract:
//   - 1 ≤ n ≤ graph.MaxVertices, n-1 ≤ m ≤ n(n-1)/2 (see validateCounts for the sentinels).
//   - Emits the path edges (1,2),(2,3),...,(n-1,n) first, in increasing order;
//     those n-1 edges make the graph connected.
//   - The remaining m-(n-1) edges are sampled uniformly among absent pairs.
//   - Report.Truncated is only possible when WithMaxAttempts is set.
//
// Complexity:
//   - Time: O(n) for the path + expected O(m) draws at low density.
//   - Space: O(n + m).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphbench/graph"
)

const methodConnected = "Connected"

// Connected returns a Constructor for a connected graph with n vertices and
// m edges.
func Connected(n, m int) Constructor {
	return func(cfg builderConfig) (*Report, error) {
		if err := validateCounts(methodConnected, n, m, true); err != nil {
			return nil, err
		}

		g, err := graph.NewWithCapacity(n, m)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodConnected, err)
		}

		// Spanning path 1-2-...-n.
		for v := 1; v < n; v++ {
			if err = g.AddEdge(v, v+1); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %v: %w", methodConnected, v, v+1, err, ErrConstructFailed)
			}
		}

		rep := &Report{
			Graph:     g,
			Mode:      graph.Connected,
			Requested: m,
			Strategy:  StrategyNone,
		}
		if err = fillRandom(methodConnected, g, m-(n-1), cfg, rep); err != nil {
			return nil, err
		}
		rep.Actual = g.Size()
		return rep, nil
	}
}
