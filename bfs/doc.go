// Package bfs provides breadth-first search over a graph.Graph that counts
// shortest paths, returning distances, path counts modulo 1,000,000,007, and
// one predecessor per vertex.
//
// What
//
//   - Explore vertices level by level from a source with a FIFO queue.
//   - CountPaths returns a Result containing:
//   - Dist:   distance (edges) from the source; Unreached if never discovered
//   - Ways:   number of distinct shortest paths from the source, mod Modulus
//   - Parent: one predecessor on a shortest path (0 for the source / unreached)
//   - Order:  visit sequence
//   - ShortestPath wraps CountPaths for a single target and reconstructs one
//     concrete shortest path by walking Parent backwards.
//
// Counting rule
//
//	For each vertex v popped from the queue and each neighbor u:
//	  1. if u is unreached: Dist[u] = Dist[v]+1, Parent[u] = v, enqueue u;
//	  2. independently, if Dist[u] == Dist[v]+1: Ways[u] += Ways[v] (mod Modulus).
//	Step 2 must not be folded into step 1: a vertex keeps receiving shortest-path
//	contributions from other same-level predecessors after its distance is fixed.
//
// Determinism
//
//	Neighbors are scanned in adjacency (insertion) order, so Order and Parent
//	are reproducible for the same graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V); all per-vertex state is allocated up front and the queue
//     never reallocates.
//
// Options
//
//   - WithContext(ctx):   cancellation, checked once per dequeued vertex.
//   - WithMaxDepth(d):    stop exploring beyond depth d (>0); 0 means no limit.
//   - WithOnVisit(fn):    hook on dequeue; returning an error aborts the search.
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrVertexNotFound    if source or target is outside [1,N].
//   - ErrOptionViolation   for invalid options (negative MaxDepth).
//   - ErrNoPath            from PathTo when the target was not reached.
//   - Wrapped OnVisit errors and ctx.Err().
package bfs
