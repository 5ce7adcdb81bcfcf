// Package bfs provides tunable options, results and error definitions
// for breadth-first search over a graph.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// Modulus is the prime shortest-path counts are reduced by.
	Modulus int64 = 1_000_000_007

	// Unreached marks vertices the search never discovered.
	Unreached = -1
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrVertexNotFound is returned when the source or target is outside [1,N].
	ErrVertexNotFound = errors.New("bfs: vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a vertex the search did not reach.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize the search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a vertex is dequeued, with its depth.
	// Returning an error aborts the search and propagates that error.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no depth limit
// and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(int, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: vertices farther than d edges stay Unreached
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a path-counting BFS. Slices are indexed by
// vertex ID; index 0 is unused.
type Result struct {
	Source int
	Dist   []int
	Ways   []int64
	Parent []int
	Order  []int
}

func (r *Result) inRange(v int) bool {
	return v >= 1 && v < len(r.Dist)
}

// Reachable reports whether v was discovered.
func (r *Result) Reachable(v int) bool {
	return r.inRange(v) && r.Dist[v] != Unreached
}

// Distance returns the shortest distance to v, or Unreached.
func (r *Result) Distance(v int) int {
	if !r.inRange(v) {
		return Unreached
	}
	return r.Dist[v]
}

// Count returns the number of shortest paths to v modulo Modulus; 0 when
// v was not reached.
func (r *Result) Count(v int) int64 {
	if !r.inRange(v) {
		return 0
	}
	return r.Ways[v]
}

// PathTo reconstructs one shortest path from the source to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reachable(dest) {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	path := make([]int, r.Dist[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}
	return path, nil
}

// Path summarizes the search from a source to a single target.
type Path struct {
	Source, Target int
	Reachable      bool
	// Count is the number of shortest paths modulo Modulus.
	Count int64
	// Distance is the shortest distance, or Unreached.
	Distance int
	// Vertices is one shortest path, source first; nil when unreachable.
	Vertices []int
}

// String renders the path target-first, e.g. "6<-4<-2<-1".
// An unreachable target renders as the empty string.
func (p *Path) String() string {
	if !p.Reachable {
		return ""
	}
	var sb strings.Builder
	for i := len(p.Vertices) - 1; i >= 0; i-- {
		sb.WriteString(strconv.Itoa(p.Vertices[i]))
		if i > 0 {
			sb.WriteString("<-")
		}
	}
	return sb.String()
}
