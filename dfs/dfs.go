// Package dfs implements depth-first reachability search (single-source and
// forest) on graph.Graph with an explicit stack, so search depth is bounded
// by memory rather than by the goroutine stack.
//
// Key features:
//   - Reach(g, source, opts...): traverse from a root, or the full forest via WithFullTraversal
//   - Reachable(g, source, target): the single yes/no question
//   - Hooks: OnVisit on discovery, with error aborts
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the stack and per-vertex slices.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrVertexNotFound         if source or target is outside [1,N].
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphbench/graph"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *graph.Graph
	opts  Options
	res   *Result
	stack []int
}

// Reach performs depth-first search on g from source. With WithFullTraversal
// it then restarts from every vertex still unvisited, covering all
// components. Returns Result, or an error if aborted by context or hook
// (the partial Result is returned alongside).
func Reach(g *graph.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d (n=%d)", ErrVertexNotFound, source, g.Order())
	}

	n := g.Order()
	res := &Result{
		Source:    source,
		Visited:   make([]bool, n+1),
		Depth:     make([]int, n+1),
		Parent:    make([]int, n+1),
		Order:     make([]int, 0, n),
		Component: make([]int, n+1),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res, stack: make([]int, 0, n)}

	if err := walker.traverse(source); err != nil {
		return res, err
	}
	if dopts.FullTraversal {
		for v := 1; v <= n; v++ {
			if !res.Visited[v] {
				if err := walker.traverse(v); err != nil {
					return res, err
				}
			}
		}
	}
	return res, nil
}

// Reachable reports whether target can be reached from source.
func Reachable(g *graph.Graph, source, target int, opts ...Option) (bool, error) {
	if g != nil && !g.HasVertex(target) {
		return false, fmt.Errorf("%w: target %d (n=%d)", ErrVertexNotFound, target, g.Order())
	}
	res, err := Reach(g, source, opts...)
	if err != nil {
		return false, err
	}
	return res.Visited[target], nil
}

// traverse grows one search tree from root until the stack is empty.
func (w *dfsWalker) traverse(root int) error {
	w.res.components++
	if err := w.discover(root, 0, 0); err != nil {
		return err
	}
	w.stack = append(w.stack[:0], root)

	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := len(w.stack) - 1
		v := w.stack[top]
		w.stack = w.stack[:top]

		next := w.res.Depth[v] + 1
		for _, u := range w.graph.Neighbors(v) {
			if w.res.Visited[u] {
				continue
			}
			if err := w.discover(u, v, next); err != nil {
				return err
			}
			w.stack = append(w.stack, u)
		}
	}
	return nil
}

// discover marks v visited from parent at the given depth and runs the hook.
func (w *dfsWalker) discover(v, parent, depth int) error {
	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.res.Component[v] = w.res.components
	w.res.Order = append(w.res.Order, v)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}
	return nil
}
