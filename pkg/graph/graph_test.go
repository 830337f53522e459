package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agnosticengineer/visualize-files-graph/pkg/graph"
)

func TestGraph_AddNodeUpserts(t *testing.T) {
	t.Parallel()

	g := graph.New()

	g.AddNode(graph.Node{ID: "a.txt", Label: "a.txt", Kind: graph.KindFile})
	g.AddNode(graph.Node{ID: "a.txt", Label: "a.txt", Kind: graph.KindFile, Size: 42})

	require.Equal(t, 1, g.NodeCount())
	require.Equal(t, int64(42), g.Nodes()[0].Size)
}

func TestGraph_AddEdgeDeduplicates(t *testing.T) {
	t.Parallel()

	g := graph.New()

	g.AddEdge(graph.Edge{Source: "dir", Target: "dir/a", Kind: graph.EdgeContains})
	g.AddEdge(graph.Edge{Source: "dir", Target: "dir/a", Kind: graph.EdgeContains})
	g.AddEdge(graph.Edge{Source: "dir", Target: "dir/a", Kind: graph.EdgeReferences})

	require.Equal(t, 2, g.EdgeCount())
}

func TestGraph_DeterministicOrdering(t *testing.T) {
	t.Parallel()

	build := func() *graph.Graph {
		g := graph.New()
		g.AddNode(graph.Node{ID: "z", Kind: graph.KindFile})
		g.AddNode(graph.Node{ID: "a", Kind: graph.KindDirectory})
		g.AddNode(graph.Node{ID: "m", Kind: graph.KindFile})
		g.AddEdge(graph.Edge{Source: "a", Target: "z", Kind: graph.EdgeContains})
		g.AddEdge(graph.Edge{Source: "a", Target: "m", Kind: graph.EdgeContains})

		return g
	}

	first := build()
	second := build()

	require.Equal(t, first.Nodes(), second.Nodes())
	require.Equal(t, first.Edges(), second.Edges())

	ids := make([]string, 0, first.NodeCount())
	for _, n := range first.Nodes() {
		ids = append(ids, n.ID)
	}

	require.Equal(t, []string{"a", "m", "z"}, ids)
	require.Equal(t, "m", first.Edges()[0].Target)
}

func TestGraph_CountByKind(t *testing.T) {
	t.Parallel()

	g := graph.New()
	g.AddNode(graph.Node{ID: "root", Kind: graph.KindDirectory})
	g.AddNode(graph.Node{ID: "root/a.yml", Kind: graph.KindYAMLFile})
	g.AddNode(graph.Node{ID: "root/b.yml", Kind: graph.KindYAMLFile})

	counts := g.CountByKind()
	require.Equal(t, 1, counts[graph.KindDirectory])
	require.Equal(t, 2, counts[graph.KindYAMLFile])
}
