// SPDX-License-Identifier: MIT
// Package: graphbench/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` and the method tag.
//   • Constructors never panic; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
)

// ErrTooFewVertices indicates a vertex count N < 1.
var ErrTooFewVertices = errors.New("builder: vertex count too small")

// ErrTooManyVertices indicates a vertex count N > graph.MaxVertices.
var ErrTooManyVertices = errors.New("builder: vertex count too large")

// ErrNegativeEdges indicates a target edge count M < 0.
var ErrNegativeEdges = errors.New("builder: edge count is negative")

// ErrSingleVertexEdges indicates N == 1 with M != 0; a single vertex admits no edge.
var ErrSingleVertexEdges = errors.New("builder: single vertex graph must have no edges")

// ErrTooFewEdges indicates M < N-1 for a connected graph.
var ErrTooFewEdges = errors.New("builder: too few edges for a connected graph")

// ErrTooManyEdges indicates M > N(N-1)/2, the size of the complete graph.
var ErrTooManyEdges = errors.New("builder: edge count exceeds N*(N-1)/2")

// ErrConstructFailed indicates the builder could not run (nil constructor)
// or the graph rejected an edge the sampler believed was new.
var ErrConstructFailed = errors.New("builder: construction failed")

// --- Implementation Notes ----------------------------------------------------
//
// Priority when several validations fail (first match wins):
//    ErrTooFewVertices → ErrTooManyVertices → ErrNegativeEdges → ErrSingleVertexEdges →
//    ErrTooFewEdges (connected only) → ErrTooManyEdges.
//
// Truncation (the graph filled up or the attempt cap was hit) is NOT an
// error: it is reported through Report.Truncated and logged as a warning.
