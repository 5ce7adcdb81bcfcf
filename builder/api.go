// SPDX-License-Identifier: MIT
// Package: graphbench/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(con, opts...). Resolves cfg, runs con.
//   - Generate = BuildGraph + graph.WriteFile; validation happens before any I/O.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/graphbench/graph"
)

// Constructor creates a graph using the resolved builderConfig. Constructors
// MUST validate parameters before allocating and return sentinel errors.
type Constructor func(cfg builderConfig) (*Report, error)

// Sampling strategies recorded in Report.Strategy.
const (
	StrategyNone       = "none"
	StrategyRejection  = "rejection"
	StrategyComplement = "complement"
)

// Report describes one generated graph.
type Report struct {
	// Graph is the generated graph; Graph.Size() == Actual.
	Graph *graph.Graph
	// Mode is the generation mode of the constructor.
	Mode graph.Mode
	// Requested is the target edge count M.
	Requested int
	// Actual is the number of edges produced.
	Actual int
	// Truncated is set when generation stopped before Requested edges.
	Truncated bool
	// Strategy names the sampler used for the random edges.
	Strategy string
	// Attempts counts endpoint draws; Rejected counts the draws discarded
	// as self-loops or duplicates.
	Attempts, Rejected int
}

// BuildGraph resolves the builder configuration from opts and runs con.
// A truncated result is logged as a warning on the configured logger.
//
// Errors: constructor errors are wrapped with "BuildGraph: %w"; branch with
// errors.Is against the builder sentinels.
func BuildGraph(con Constructor, opts ...BuilderOption) (*Report, error) {
	if con == nil {
		return nil, fmt.Errorf("BuildGraph: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)

	rep, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	log := cfg.logger.WithFields(logrus.Fields{
		"mode":     rep.Mode.String(),
		"vertices": rep.Graph.Order(),
	})
	if rep.Truncated {
		log.WithFields(logrus.Fields{
			"requested": rep.Requested,
			"actual":    rep.Actual,
		}).Warn("maximum generatable edge count reached; requested edge count not achieved")
	}
	log.WithFields(logrus.Fields{
		"edges":    rep.Actual,
		"strategy": rep.Strategy,
		"attempts": rep.Attempts,
		"rejected": rep.Rejected,
	}).Debug("graph generated")

	return rep, nil
}

// Generate builds a graph with n vertices and m target edges in the given
// mode and writes it to graph.FileName(dir, n, mode), creating dir if absent.
// It returns the report and the written path. On a validation error nothing
// is written.
func Generate(dir string, n, m int, mode graph.Mode, opts ...BuilderOption) (*Report, string, error) {
	var con Constructor
	switch mode {
	case graph.Connected:
		con = Connected(n, m)
	case graph.General:
		con = Random(n, m)
	default:
		return nil, "", fmt.Errorf("Generate: %s: %w", mode, graph.ErrUnknownMode)
	}

	rep, err := BuildGraph(con, opts...)
	if err != nil {
		return nil, "", err
	}

	path := graph.FileName(dir, n, mode)
	if err = graph.WriteFile(path, rep.Graph); err != nil {
		return nil, "", fmt.Errorf("Generate: %w", err)
	}
	return rep, path, nil
}
