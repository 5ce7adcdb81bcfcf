package graph

import "fmt"

// Graph is a simple undirected graph over vertices 1..N.
//
// adj is index-based (adj[0] is unused) so traversals can keep per-vertex
// state in plain slices. A Graph is not safe for concurrent mutation; it is
// built once and then only read.
type Graph struct {
	n     int
	adj   [][]int
	edges []Edge
	seen  map[Edge]struct{}
}

// New returns an empty graph with n vertices, 1 <= n <= MaxVertices.
func New(n int) (*Graph, error) {
	return NewWithCapacity(n, 0)
}

// NewWithCapacity is New with room reserved for m edges.
func NewWithCapacity(n, m int) (*Graph, error) {
	if n < 1 || n > MaxVertices {
		return nil, fmt.Errorf("New: n=%d not in [1,%d]: %w", n, MaxVertices, ErrInvalidVertexCount)
	}
	if m < 0 {
		m = 0
	}
	return &Graph{
		n:     n,
		adj:   make([][]int, n+1),
		edges: make([]Edge, 0, m),
		seen:  make(map[Edge]struct{}, m),
	}, nil
}

// Order returns the vertex count N.
func (g *Graph) Order() int { return g.n }

// Size returns the edge count M.
func (g *Graph) Size() int { return len(g.edges) }

// AddEdge inserts the undirected edge {u,v} into both adjacency lists.
func (g *Graph) AddEdge(u, v int) error {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return fmt.Errorf("AddEdge(%d,%d): n=%d: %w", u, v, g.n, ErrVertexOutOfRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	e := NewEdge(u, v)
	if _, dup := g.seen[e]; dup {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrDuplicateEdge)
	}
	g.seen[e] = struct{}{}
	g.edges = append(g.edges, e)
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	return nil
}

// HasVertex reports whether v is in [1,N].
func (g *Graph) HasVertex(v int) bool {
	return v >= 1 && v <= g.n
}

// HasEdge reports whether {u,v} is present, in either orientation.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.seen[NewEdge(u, v)]
	return ok
}

// Neighbors returns v's neighbors in insertion order. The slice is owned by
// the graph and must not be modified. Out-of-range vertices yield nil.
func (g *Graph) Neighbors(v int) []int {
	if !g.HasVertex(v) {
		return nil
	}
	return g.adj[v]
}

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) int {
	return len(g.Neighbors(v))
}

// Edges returns a copy of the edge list in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Complete reports whether the graph already holds every possible edge.
func (g *Graph) Complete() bool {
	return int64(len(g.edges)) >= MaxEdges(g.n)
}
