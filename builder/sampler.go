package builder

import (
	"fmt"

	"github.com/katalvlaran/graphbench/graph"
)

// fillRandom adds want uniformly random absent edges to g, recording the
// strategy, draw counts and truncation in rep.
//
// The strategy is chosen from the final density (existing+want)/maxEdges:
// above cfg.denseThreshold the complement is sampled directly, otherwise
// endpoints are drawn with rejection.
func fillRandom(method string, g *graph.Graph, want int, cfg builderConfig, rep *Report) error {
	if want <= 0 {
		return nil
	}
	limit := graph.MaxEdges(g.Order())
	density := float64(int64(g.Size())+int64(want)) / float64(limit)
	if density > cfg.denseThreshold {
		rep.Strategy = StrategyComplement
		return sampleComplement(method, g, want, cfg, rep)
	}
	rep.Strategy = StrategyRejection
	return sampleRejection(method, g, want, cfg, rep)
}

// sampleRejection draws two independent uniform vertices in [1,N] per
// attempt and keeps the pair only if it is neither a self-loop nor already
// present. It halts early, setting rep.Truncated, once the graph is complete
// or cfg.maxAttempts draws were made.
func sampleRejection(method string, g *graph.Graph, want int, cfg builderConfig, rep *Report) error {
	n := g.Order()
	rng := cfg.rng

	var u, v int
	for added := 0; added < want; {
		if g.Complete() {
			rep.Truncated = true
			return nil
		}
		if cfg.maxAttempts > 0 && rep.Attempts >= cfg.maxAttempts {
			rep.Truncated = true
			return nil
		}

		rep.Attempts++
		u = rng.Intn(n) + 1
		v = rng.Intn(n) + 1
		if u == v || g.HasEdge(u, v) {
			rep.Rejected++
			continue
		}
		if err := g.AddEdge(u, v); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %v: %w", method, u, v, err, ErrConstructFailed)
		}
		added++
	}
	return nil
}

// sampleComplement enumerates every absent pair and keeps a uniform random
// subset of size want via a partial Fisher–Yates shuffle. Every draw is
// accepted, so Attempts equals the number of edges added.
func sampleComplement(method string, g *graph.Graph, want int, cfg builderConfig, rep *Report) error {
	n := g.Order()
	missing := make([]graph.Edge, 0, graph.MaxEdges(n)-int64(g.Size()))
	for u := 1; u <= n; u++ {
		for v := u + 1; v <= n; v++ {
			if !g.HasEdge(u, v) {
				missing = append(missing, graph.Edge{U: u, V: v})
			}
		}
	}

	k := want
	if k > len(missing) {
		k = len(missing)
		rep.Truncated = true
	}

	var j int
	for i := 0; i < k; i++ {
		j = i + cfg.rng.Intn(len(missing)-i)
		missing[i], missing[j] = missing[j], missing[i]
		e := missing[i]
		if err := g.AddEdge(e.U, e.V); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %v: %w", method, e.U, e.V, err, ErrConstructFailed)
		}
		rep.Attempts++
	}
	return nil
}
