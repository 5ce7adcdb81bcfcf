package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphbench/bench"
	"github.com/katalvlaran/graphbench/graph"
)

type generateFlags struct {
	mode        string
	start       int
	step        int
	count       int
	edgeFactor  float64
	edges       int
	seed        int64
	maxAttempts int
}

func newGenerateCommand(input *Input) *cobra.Command {
	f := new(generateFlags)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a series of random graphs to the graph directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, input, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.mode, "mode", "general", "generation mode: general or connected")
	fl.IntVar(&f.start, "start", 5000, "vertex count of the first graph")
	fl.IntVar(&f.step, "step", 5000, "vertex count increment")
	fl.IntVar(&f.count, "count", 100, "number of graphs")
	fl.Float64Var(&f.edgeFactor, "edge-factor", 2, "edges per vertex, M = factor·N")
	fl.IntVar(&f.edges, "edges", 0, "fixed edge count for every graph (overrides --edge-factor)")
	fl.Int64Var(&f.seed, "seed", 0, "random seed; 0 seeds from the clock")
	fl.IntVar(&f.maxAttempts, "max-attempts", 0, "cap on endpoint draws per graph; 0 is unlimited")
	return cmd
}

func runGenerate(cmd *cobra.Command, input *Input, f *generateFlags) error {
	cfg := input.cfg
	changed := cmd.Flags().Changed
	if changed("mode") {
		m, err := graph.ParseMode(f.mode)
		if err != nil {
			return err
		}
		cfg.Generate.Mode = m
	}
	if changed("start") {
		cfg.Generate.Start = f.start
	}
	if changed("step") {
		cfg.Generate.Step = f.step
	}
	if changed("count") {
		cfg.Generate.Count = f.count
	}
	if changed("edge-factor") {
		cfg.Generate.EdgeFactor = f.edgeFactor
	}
	if changed("seed") {
		cfg.Generate.Seed = f.seed
	}
	if changed("max-attempts") {
		cfg.Generate.MaxAttempts = f.maxAttempts
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	plan := cfg.Plan()
	plan.Edges = f.edges
	gen, err := bench.RunPlan(cmd.Context(), plan, cfg.Dir, bench.WithLogger(input.logger))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d graphs to %s\n", len(gen), cfg.Dir)
	return err
}
