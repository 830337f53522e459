// Package render turns a relationship graph into a self-contained
// interactive HTML page using an echarts force-directed layout.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/agnosticengineer/visualize-files-graph/pkg/graph"
)

const (
	pageHeight      = "1000px"
	pageWidth       = "100%"
	forceRepulsion  = 120
	forceEdgeLength = 60
	forceGravity    = 0.1
	outputFilePerm  = 0o644
)

// Renderer writes interactive HTML graph pages.
type Renderer struct {
	// Title is used for the page and chart title.
	Title string
	// Theme selects light or dark styling. Empty defaults to dark.
	Theme Theme
}

// NewRenderer creates a renderer with the given title and theme.
func NewRenderer(title string, theme Theme) *Renderer {
	if title == "" {
		title = "File Relationship Graph"
	}

	return &Renderer{Title: title, Theme: theme}
}

// Render writes the graph as a complete HTML document.
func (r *Renderer) Render(g *graph.Graph, w io.Writer) error {
	chart := r.BuildChart(g)

	renderErr := chart.Render(w)
	if renderErr != nil {
		return fmt.Errorf("render chart: %w", renderErr)
	}

	return nil
}

// RenderFile writes the HTML document to path, overwriting any existing
// file. The parent directory must exist.
func (r *Renderer) RenderFile(g *graph.Graph, path string) error {
	out, createErr := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputFilePerm)
	if createErr != nil {
		return fmt.Errorf("create output file: %w", createErr)
	}

	renderErr := r.Render(g, out)

	closeErr := out.Close()
	if renderErr != nil {
		return renderErr
	}

	if closeErr != nil {
		return fmt.Errorf("close output file: %w", closeErr)
	}

	return nil
}

// BuildChart creates the force-directed graph chart.
func (r *Renderer) BuildChart(g *graph.Graph) *charts.Graph {
	theme := configFor(r.Theme)

	chart := charts.NewGraph()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       r.Title,
			Width:           pageWidth,
			Height:          pageHeight,
			BackgroundColor: theme.Background,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      r.Title,
			Subtitle:   fmt.Sprintf("%d nodes, %d edges", g.NodeCount(), g.EdgeCount()),
			TitleStyle: &opts.TextStyle{Color: theme.LabelColor},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	chart.AddSeries("relationships", buildNodes(g), buildLinks(g),
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout: "force",
			Force: &opts.GraphForce{
				Repulsion:  forceRepulsion,
				EdgeLength: forceEdgeLength,
				Gravity:    forceGravity,
			},
			Roam:               opts.Bool(true),
			Draggable:          opts.Bool(true),
			FocusNodeAdjacency: opts.Bool(true),
			EdgeSymbol:         []string{"none", "arrow"},
		}),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Position: "right",
			Color:    theme.LabelColor,
		}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: theme.EdgeColor}),
	)

	return chart
}

func buildNodes(g *graph.Graph) []opts.GraphNode {
	nodes := g.Nodes()
	out := make([]opts.GraphNode, 0, len(nodes))

	for _, n := range nodes {
		style := styleFor(n.Kind)

		out = append(out, opts.GraphNode{
			Name:       n.ID,
			Value:      float32(n.Size),
			SymbolSize: style.Size,
			ItemStyle:  &opts.ItemStyle{Color: style.Color},
			Tooltip:    nodeTooltip(n),
		})
	}

	return out
}

// nodeTooltip shows the short label plus kind, language, and size
// metadata. Link endpoints match on Name, so the node keeps its full
// ID there.
func nodeTooltip(n graph.Node) *opts.Tooltip {
	label := n.Label
	if label == "" {
		label = n.ID
	}

	parts := []string{fmt.Sprintf("<b>%s</b>", label), string(n.Kind)}

	if n.Language != "" {
		parts = append(parts, n.Language)
	}

	if n.Size > 0 {
		parts = append(parts, humanize.Bytes(uint64(n.Size)))
	}

	return &opts.Tooltip{Formatter: types.FuncStr(strings.Join(parts, "<br/>"))}
}

func buildLinks(g *graph.Graph) []opts.GraphLink {
	edges := g.Edges()
	out := make([]opts.GraphLink, 0, len(edges))

	for _, e := range edges {
		out = append(out, opts.GraphLink{Source: e.Source, Target: e.Target})
	}

	return out
}
