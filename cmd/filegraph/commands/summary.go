package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/agnosticengineer/visualize-files-graph/pkg/graph"
)

// printSummary writes the per-kind node counts and the output location,
// mirroring the final counts the scan logs.
func printSummary(w io.Writer, g *graph.Graph, outputPath string) {
	counts := g.CountByKind()

	kinds := make([]graph.NodeKind, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}

	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Kind", "Nodes"})

	for _, kind := range kinds {
		tw.AppendRow(table.Row{string(kind), counts[kind]})
	}

	tw.AppendFooter(table.Row{"total", g.NodeCount()})
	tw.Render()

	var totalSize int64

	languages := make(map[string]int)

	for _, n := range g.Nodes() {
		totalSize += n.Size

		if n.Language != "" {
			languages[n.Language]++
		}
	}

	fmt.Fprintf(w, "%d edges, %s scanned\n", g.EdgeCount(), humanize.Bytes(uint64(totalSize)))

	if len(languages) > 0 {
		fmt.Fprintf(w, "languages: %s\n", formatLanguages(languages))
	}

	fmt.Fprintln(w, color.GreenString("wrote %s", outputPath))
}

func formatLanguages(languages map[string]int) string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}

	// Most common first, ties alphabetical.
	sort.Slice(names, func(i, j int) bool {
		if languages[names[i]] != languages[names[j]] {
			return languages[names[i]] > languages[names[j]]
		}

		return names[i] < names[j]
	})

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s (%d)", name, languages[name])
	}

	return strings.Join(parts, ", ")
}
