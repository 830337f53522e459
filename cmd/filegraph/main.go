// Package main provides the entry point for the filegraph CLI tool.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/agnosticengineer/visualize-files-graph/cmd/filegraph/commands"
	"github.com/agnosticengineer/visualize-files-graph/pkg/version"
)

const runArgCount = 2

var errWrongArgCount = errors.New("expected <input-dir> and <output-html> arguments")

var (
	verbose bool
	quiet   bool
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "filegraph <input-dir> <output-html>",
		Short: "Filegraph - interactive file relationship graphs",
		Long: `Filegraph scans a directory tree and renders the relationships between
its files as an interactive HTML graph.

Commands:
  run       Scan a directory and write the graph (also the default)
  formats   List supported reference-extraction formats`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation prints usage; a wrong argument count is an error.
			if len(args) == 0 {
				return cmd.Help()
			}

			if len(args) != runArgCount {
				return fmt.Errorf("%w, got %d", errWrongArgCount, len(args))
			}

			return commands.RunScan(cmd, args[0], args[1])
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output")
	commands.BindScanFlags(rootCmd)

	// Add commands.
	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewFormatsCommand())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func setupLogging() {
	level := slog.LevelInfo

	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "filegraph %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
