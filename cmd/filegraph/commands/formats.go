package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/agnosticengineer/visualize-files-graph/pkg/extract"
)

// NewFormatsCommand creates the formats subcommand, which lists the file
// formats reference extraction understands.
func NewFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List file formats supported by reference extraction",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.AppendHeader(table.Row{"Format", "Matches", "File Kind", "Reference Kind"})

			for _, ex := range extract.Default() {
				tw.AppendRow(table.Row{
					ex.Name(),
					ex.Patterns(),
					string(ex.FileKind()),
					string(ex.RefKind()),
				})
			}

			tw.Render()
		},
	}
}
