// Package commands implements the filegraph CLI subcommands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agnosticengineer/visualize-files-graph/internal/config"
	"github.com/agnosticengineer/visualize-files-graph/pkg/render"
	"github.com/agnosticengineer/visualize-files-graph/pkg/scan"
)

const runArgCount = 2

// NewRunCommand creates the run subcommand.
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <input-dir> <output-html>",
		Short: "Scan a directory and write an interactive relationship graph",
		Long: `Scan a directory tree, build a graph of containment and reference
relationships, and write it as a self-contained interactive HTML page.

References are extracted from YAML, INI, properties, and Jinja-style
template files; files sharing a key or variable are connected through it.`,
		Args: cobra.ExactArgs(runArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunScan(cmd, args[0], args[1])
		},
	}

	BindScanFlags(cmd)

	return cmd
}

// BindScanFlags registers the flags shared by the run command and the
// root-level two-argument form.
func BindScanFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "explicit config file path")
	cmd.Flags().String("theme", "", "output theme: light or dark")
	cmd.Flags().String("title", "", "rendered page title")
	cmd.Flags().Bool("no-extract", false, "build containment edges only")
	cmd.Flags().Bool("include-hidden", false, "scan dot-prefixed files and directories")
	cmd.Flags().Int64("max-file-size", 0, "max file size in bytes read during extraction (0 = config default)")
}

// RunScan executes the scan and render pipeline. Flag overrides are read
// from cmd when the corresponding flags are bound and set.
func RunScan(cmd *cobra.Command, inputDir, outputPath string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, loadErr := config.Load(configPath)
	if loadErr != nil {
		return loadErr
	}

	overrideErr := applyFlagOverrides(cmd, cfg)
	if overrideErr != nil {
		return overrideErr
	}

	walker := scan.NewWalker(scan.Options{
		IncludeHidden: cfg.IncludeHidden,
		Extract:       cfg.Extract,
		MaxFileSize:   cfg.MaxFileSize,
	})

	g, walkErr := walker.Walk(cmd.Context(), inputDir)
	if walkErr != nil {
		return fmt.Errorf("scan %s: %w", inputDir, walkErr)
	}

	renderer := render.NewRenderer(cfg.Title, render.Theme(cfg.Theme))

	renderErr := renderer.RenderFile(g, outputPath)
	if renderErr != nil {
		return renderErr
	}

	printSummary(cmd.OutOrStdout(), g, outputPath)

	return nil
}

// applyFlagOverrides lets explicitly set flags win over file and env
// configuration, then re-validates.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("theme") {
		cfg.Theme, _ = flags.GetString("theme")
	}

	if flags.Changed("title") {
		cfg.Title, _ = flags.GetString("title")
	}

	if flags.Changed("no-extract") {
		noExtract, _ := flags.GetBool("no-extract")
		cfg.Extract = !noExtract
	}

	if flags.Changed("include-hidden") {
		cfg.IncludeHidden, _ = flags.GetBool("include-hidden")
	}

	if flags.Changed("max-file-size") {
		cfg.MaxFileSize, _ = flags.GetInt64("max-file-size")
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return validateErr
	}

	return nil
}
