package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphbench/history"
)

var errNoHistory = errors.New("no history database: set --history or measure.history")

func newHistoryCommand(input *Input) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect or prune recorded measurement runs",
	}
	cmd.PersistentFlags().StringVar(&path, "history", "", "bolt database path (defaults to measure.history)")

	open := func(cmd *cobra.Command) (*history.Store, error) {
		p := input.cfg.Measure.History
		if cmd.Flags().Changed("history") {
			p = path
		}
		if p == "" {
			return nil, errNoHistory
		}
		return history.Open(p)
	}

	cmd.AddCommand(newHistoryListCommand(open), newHistoryPruneCommand(input, open))
	return cmd
}

type storeOpener func(cmd *cobra.Command) (*history.Store, error)

func newHistoryListCommand(open storeOpener) *cobra.Command {
	var (
		algo  string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := open(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List(algo, limit)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSTARTED\tALGORITHM\tSOURCE\tROWS\tTOTAL")
			for _, r := range runs {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\n",
					r.ID, r.Started().Format(time.RFC3339), r.Algorithm, r.Source, len(r.Rows), r.Total())
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&algo, "algo", "", "only runs of this algorithm (bfs, dfs, both)")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs; 0 lists all")
	return cmd
}

func newHistoryPruneCommand(input *Input, open storeOpener) *cobra.Command {
	var olderThan time.Duration
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete runs older than the given age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if olderThan <= 0 {
				return fmt.Errorf("--older-than must be positive, got %s", olderThan)
			}
			store, err := open(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.Prune(time.Now().Add(-olderThan))
			if err != nil {
				return err
			}
			input.logger.WithField("removed", n).Info("history pruned")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "removed %d runs\n", n)
			return err
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "minimum age of the runs to delete")
	return cmd
}
