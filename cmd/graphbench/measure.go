package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphbench/bench"
	"github.com/katalvlaran/graphbench/graph"
	"github.com/katalvlaran/graphbench/history"
)

type measureFlags struct {
	from    int
	to      int
	algo    string
	output  string
	history string
	mode    string
}

func newMeasureCommand(input *Input) *cobra.Command {
	f := new(measureFlags)
	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Time BFS and/or DFS from vertex 1 to vertex N on every existing graph file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMeasure(cmd, input, f)
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&f.from, "from", 1, "first file index")
	fl.IntVar(&f.to, "to", 300000, "last file index")
	fl.StringVar(&f.algo, "algo", "bfs", "algorithm: bfs, dfs or both")
	fl.StringVarP(&f.output, "output", "o", "result.csv", "CSV output path; empty prints a table")
	fl.StringVar(&f.history, "history", "", "bolt database to record the run in")
	fl.StringVar(&f.mode, "mode", "general", "file naming of the inputs: general or connected")
	return cmd
}

func runMeasure(cmd *cobra.Command, input *Input, f *measureFlags) error {
	cfg := input.cfg
	changed := cmd.Flags().Changed
	if changed("from") {
		cfg.Measure.From = f.from
	}
	if changed("to") {
		cfg.Measure.To = f.to
	}
	if changed("algo") {
		a, err := bench.ParseAlgorithm(f.algo)
		if err != nil {
			return err
		}
		cfg.Measure.Algorithm = a
	}
	if changed("output") {
		cfg.Measure.Output = f.output
	}
	if changed("history") {
		cfg.Measure.History = f.history
	}
	if changed("mode") {
		m, err := graph.ParseMode(f.mode)
		if err != nil {
			return err
		}
		cfg.Generate.Mode = m
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	src := cfg.Source()
	started := time.Now()
	rows, err := bench.Measure(cmd.Context(), src, cfg.Measure.Algorithm, bench.WithLogger(input.logger))
	// rows measured before a failure are still reported
	if werr := writeRows(cmd, cfg.Measure.Output, rows); werr != nil && err == nil {
		err = werr
	}
	if err != nil {
		return err
	}

	if cfg.Measure.History == "" {
		return nil
	}
	store, err := history.Open(cfg.Measure.History)
	if err != nil {
		return err
	}
	defer store.Close()
	run := history.NewRun(started, cfg.Measure.Algorithm, src, rows)
	if err = store.Save(run); err != nil {
		return err
	}
	input.logger.WithField("id", run.ID).Info("run recorded")
	return nil
}

func writeRows(cmd *cobra.Command, output string, rows []bench.Row) error {
	if output == "" {
		return bench.TableSink{W: cmd.OutOrStdout()}.Write(rows)
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	file, err := os.Create(output)
	if err != nil {
		return err
	}
	if err = (bench.CSVSink{W: file}).Write(rows); err != nil {
		_ = file.Close()
		return err
	}
	if err = file.Close(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", len(rows), output)
	return err
}
