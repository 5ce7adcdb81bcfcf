package bench

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/graphbench/builder"
	"github.com/katalvlaran/graphbench/graph"
)

// ErrInvalidPlan is returned by RunPlan for a plan that cannot produce any graph.
var ErrInvalidPlan = errors.New("bench: invalid plan")

// Plan describes a series of graphs to generate.
type Plan struct {
	Mode graph.Mode
	// Vertex counts are Start, Start+Step, ..., Count values in total.
	Start, Step, Count int
	// EdgeFactor sets M = int(EdgeFactor·N) when Edges is 0.
	EdgeFactor float64
	// Edges, when > 0, fixes M for every graph.
	Edges int
	// Seed makes the series reproducible; 0 means time-seeded.
	Seed int64
	// MaxAttempts caps rejection-sampling draws per graph; 0 means unlimited.
	MaxAttempts int
}

// Sizes returns the (N, M) pairs of the plan in generation order.
func (p Plan) Sizes() [][2]int {
	out := make([][2]int, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		n := p.Start + i*p.Step
		m := p.Edges
		if m <= 0 {
			m = int(p.EdgeFactor * float64(n))
		}
		out = append(out, [2]int{n, m})
	}
	return out
}

func (p Plan) validate() error {
	if p.Count < 1 {
		return fmt.Errorf("%w: count=%d", ErrInvalidPlan, p.Count)
	}
	if p.Start < 1 {
		return fmt.Errorf("%w: start=%d", ErrInvalidPlan, p.Start)
	}
	if p.Step < 0 {
		return fmt.Errorf("%w: step=%d", ErrInvalidPlan, p.Step)
	}
	if p.Edges <= 0 && p.EdgeFactor < 0 {
		return fmt.Errorf("%w: edge factor=%g", ErrInvalidPlan, p.EdgeFactor)
	}
	if p.MaxAttempts < 0 {
		return fmt.Errorf("%w: max attempts=%d", ErrInvalidPlan, p.MaxAttempts)
	}
	return nil
}

// Generated is one file produced by RunPlan.
type Generated struct {
	Path   string
	Report *builder.Report
}

// RunPlan generates every graph of p into dir. Entries rejected by builder
// validation are logged and skipped; write failures and cancellation abort.
func RunPlan(ctx context.Context, p Plan, dir string, opts ...Option) ([]Generated, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts...)

	bopts := []builder.BuilderOption{builder.WithLogger(o.logger)}
	if p.Seed != 0 {
		// one RNG for the whole series keeps it reproducible end to end
		bopts = append(bopts, builder.WithRand(rand.New(rand.NewSource(p.Seed))))
	}
	if p.MaxAttempts > 0 {
		bopts = append(bopts, builder.WithMaxAttempts(p.MaxAttempts))
	}

	var out []Generated
	for _, size := range p.Sizes() {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		n, m := size[0], size[1]
		log := o.logger.WithFields(logrus.Fields{"vertices": n, "edges": m, "mode": p.Mode.String()})

		rep, path, err := builder.Generate(dir, n, m, p.Mode, bopts...)
		if err != nil {
			if isValidation(err) {
				log.WithError(err).Error("graph parameters rejected; skipping")
				continue
			}
			return out, err
		}
		log.WithFields(logrus.Fields{"path": path, "actual": rep.Actual}).Info("graph written")
		out = append(out, Generated{Path: path, Report: rep})
	}
	return out, nil
}

func isValidation(err error) bool {
	for _, target := range []error{
		builder.ErrTooFewVertices,
		builder.ErrTooManyVertices,
		builder.ErrNegativeEdges,
		builder.ErrSingleVertexEdges,
		builder.ErrTooFewEdges,
		builder.ErrTooManyEdges,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
