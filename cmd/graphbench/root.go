package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exitFunc = os.Exit

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	input := new(Input)
	rootCmd := createRootCommand(ctx, input, version)
	if err := rootCmd.Execute(); err != nil {
		exitFunc(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "graphbench",
		Short:        "Generate random undirected graphs and time BFS path counting and DFS reachability on them.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return input.resolve(cmd.Flags(), cmd.ErrOrStderr())
		},
	}
	rootCmd.SetContext(ctx)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&input.configPath, "config", "c", "", "path to a YAML config file")
	pf.StringVarP(&input.dir, "dir", "d", "Graphs", "directory for graph files")
	pf.BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	pf.StringVar(&input.logFormat, "log-format", "text", "log format: text or json")

	rootCmd.AddCommand(
		newGenerateCommand(input),
		newMeasureCommand(input),
		newHistoryCommand(input),
		newVersionCommand(version),
	)
	return rootCmd
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}
}
