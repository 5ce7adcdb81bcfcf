// Package bfs provides breadth-first search over a graph.Graph,
// returning shortest distances, shortest-path counts and parent links.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphbench/graph"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *graph.Graph
	opts  Options
	ctx   context.Context
	// queue holds every enqueued vertex; queue[head:] is the frontier and
	// queue[:head] is the visit order so far.
	queue []int
	head  int
	res   *Result
}

// CountPaths runs breadth-first search on g from source, counting the
// shortest paths to every vertex.
// Returns ErrGraphNil or ErrVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any hook / context error.
func CountPaths(g *graph.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d (n=%d)", ErrVertexNotFound, source, g.Order())
	}

	n := g.Order()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &Result{
			Source: source,
			Dist:   make([]int, n+1),
			Ways:   make([]int64, n+1),
			Parent: make([]int, n+1),
		},
	}
	for v := range w.res.Dist {
		w.res.Dist[v] = Unreached
	}

	w.res.Dist[source] = 0
	w.res.Ways[source] = 1
	w.queue = append(w.queue, source)

	err := w.loop()
	w.res.Order = w.queue[:w.head]
	return w.res, err
}

// ShortestPath runs CountPaths from source and summarizes the result for
// target: reachability, path count, distance and one concrete path.
func ShortestPath(g *graph.Graph, source, target int, opts ...Option) (*Path, error) {
	if g != nil && !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: target %d (n=%d)", ErrVertexNotFound, target, g.Order())
	}
	res, err := CountPaths(g, source, opts...)
	if err != nil {
		return nil, err
	}

	p := &Path{
		Source:    source,
		Target:    target,
		Reachable: res.Reachable(target),
		Count:     res.Count(target),
		Distance:  res.Distance(target),
	}
	if p.Reachable {
		p.Vertices, _ = res.PathTo(target)
	}
	return p, nil
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.queue[w.head]
		w.head++
		depth := w.res.Dist[v]
		if err := w.opts.OnVisit(v, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}
		if w.opts.MaxDepth > 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.relax(v, depth+1)
	}
	return nil
}

// relax discovers v's unreached neighbors at depth next and adds v's path
// count to every neighbor lying one level below it.
func (w *walker) relax(v, next int) {
	dist, ways, parent := w.res.Dist, w.res.Ways, w.res.Parent
	for _, u := range w.graph.Neighbors(v) {
		if dist[u] == Unreached {
			dist[u] = next
			parent[u] = v
			w.queue = append(w.queue, u)
		}
		if dist[u] == next {
			ways[u] = (ways[u] + ways[v]) % Modulus
		}
	}
}
