// Package graph defines the simple undirected Graph shared by the generator
// and the traversals, and the plain text format used to store it on disk.
//
// What
//
//   - Vertices are the integers 1..N; index 0 of every per-vertex slice is unused.
//   - Edges are unordered pairs of distinct vertices, stored symmetrically:
//     an edge {A,B} appears in both A's and B's neighbor lists.
//   - No self-loops, no parallel edges. AddEdge rejects both.
//   - Edges are kept in insertion order, so Write emits them in the order
//     they were added and a Write/Read round-trip reproduces the same file.
//
// File format
//
//	N M
//	A1 B1
//	A2 B2
//	...
//	AM BM
//
// The first line holds the vertex and edge counts; each following line holds
// one edge as two 1-indexed vertex IDs. Any whitespace separates tokens.
//
// Errors
//
//   - ErrInvalidVertexCount  if N < 1.
//   - ErrVertexOutOfRange    if an endpoint is outside [1,N].
//   - ErrSelfLoop            if both endpoints are equal.
//   - ErrDuplicateEdge       if the normalized pair is already present.
//   - ErrMalformed           for unparsable or negative header/edge tokens.
//   - ErrTruncated           if fewer edges follow than the header declared.
//
// Complexity: AddEdge is O(1) amortized; Read and Write are O(N + M).
package graph
