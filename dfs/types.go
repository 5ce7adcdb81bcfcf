// Package dfs defines types and options for depth-first reachability search,
// including cancellation, a discovery hook, and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed to Reach.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexNotFound indicates that the source or target is outside [1,N].
	ErrVertexNotFound = errors.New("dfs: vertex not found")

	// ErrNoPath is returned by PathTo for a vertex the search did not reach.
	ErrNoPath = errors.New("dfs: no path")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is first discovered.
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// FullTraversal, if true, restarts the search from every unvisited
	// vertex in ascending order, covering all connected components.
	FullTraversal bool
}

// DefaultOptions returns Options with a background context, no hook and
// single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		OnVisit:       nil,
		FullTraversal: false,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a discovery hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal. Slices are
// indexed by vertex ID; index 0 is unused.
type Result struct {
	// Source is the start vertex (the first root under FullTraversal).
	Source int

	// Visited flags which vertices were reached.
	Visited []bool

	// Depth is the number of edges on the discovery chain from the root.
	// It reflects discovery order only and is NOT a shortest distance:
	// the stack can reach a vertex through a longer route first.
	Depth []int

	// Parent is the vertex from which each vertex was first discovered;
	// 0 for roots and unvisited vertices.
	Parent []int

	// Order records vertices in discovery sequence.
	Order []int

	// Component is the 1-based id of the search tree that reached each
	// vertex; 0 for unvisited vertices.
	Component []int

	components int
}

// Reached reports whether v was visited.
func (r *Result) Reached(v int) bool {
	return v >= 1 && v < len(r.Visited) && r.Visited[v]
}

// Components returns the number of search trees grown. Under FullTraversal
// this is the number of connected components of the graph.
func (r *Result) Components() int {
	return r.components
}

// PathTo returns the discovery chain from the root of dest's tree to dest.
// The chain is a valid path but not necessarily a shortest one.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	path := make([]int, r.Depth[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}
	return path, nil
}
