// SPDX-License-Identifier: MIT
// Package: graphbench/builder
//
// impl_random.go - implementation of Random(n, m) constructor.
//
// Contract:
//   - 1 ≤ n ≤ graph.MaxVertices, 0 ≤ m ≤ n(n-1)/2 (see validateCounts for the sentinels).
//   - n == 1 requires m == 0 and yields the single-vertex graph.
//   - Edges are sampled uniformly among absent pairs, starting from empty.
//   - No connectivity guarantee; traversals must discover it.
//   - If the graph becomes complete or the attempt cap is hit before m edges,
//     generation halts and Report.Truncated is set. Never loops forever on
//     a full graph.
//
// Complexity:
//   - Time: expected O(m) draws at low density; O(n²) with complement sampling.
//   - Space: O(n + m).

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphbench/graph"
)

const methodRandom = "Random"

// Random returns a Constructor for a graph with n vertices and up to m
// uniformly random edges.
func Random(n, m int) Constructor {
	return func(cfg builderConfig) (*Report, error) {
		if err := validateCounts(methodRandom, n, m, false); err != nil {
			return nil, err
		}

		g, err := graph.NewWithCapacity(n, m)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodRandom, err)
		}

		rep := &Report{
			Graph:     g,
			Mode:      graph.General,
			Requested: m,
			Strategy:  StrategyNone,
		}
		if err = fillRandom(methodRandom, g, m, cfg, rep); err != nil {
			return nil, err
		}
		rep.Actual = g.Size()
		return rep, nil
	}
}
