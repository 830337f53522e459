// Package graph holds the in-memory relationship graph built from a
// directory scan. The graph is constructed once, handed to the renderer,
// and discarded; nothing here is safe for concurrent mutation.
package graph

import (
	"sort"
)

// NodeKind classifies a node for coloring and sizing in the rendered output.
type NodeKind string

// Node kinds for filesystem entries and extracted references.
const (
	KindDirectory   NodeKind = "directory"
	KindFile        NodeKind = "file"
	KindYAMLFile    NodeKind = "yaml"
	KindYAMLKey     NodeKind = "yaml_key"
	KindINIFile     NodeKind = "ini"
	KindINIKey      NodeKind = "ini_key"
	KindProperties  NodeKind = "properties"
	KindPropertyKey NodeKind = "property_key"
	KindTemplate    NodeKind = "template"
	KindVariable    NodeKind = "variable"
)

// EdgeKind classifies the relationship an edge represents.
type EdgeKind string

// Edge kinds.
const (
	// EdgeContains links a directory to an immediate child entry.
	EdgeContains EdgeKind = "contains"
	// EdgeReferences links a file to a key or variable extracted from it.
	EdgeReferences EdgeKind = "references"
)

// Node is a single vertex keyed by its filesystem path (or, for extracted
// references, the bare identifier).
type Node struct {
	ID       string
	Label    string
	Kind     NodeKind
	Language string
	Size     int64
}

// Edge is a directed relationship between two node IDs.
type Edge struct {
	Source string
	Target string
	Kind   EdgeKind
	Detail string
}

type edgeKey struct {
	source string
	target string
	kind   EdgeKind
}

// Graph accumulates nodes and edges during a scan. Node IDs are unique;
// adding a node with an existing ID replaces it. Edges are de-duplicated
// on (source, target, kind).
type Graph struct {
	nodes map[string]Node
	edges []Edge
	seen  map[edgeKey]struct{}
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]Node),
		seen:  make(map[edgeKey]struct{}),
	}
}

// AddNode inserts or replaces a node.
func (g *Graph) AddNode(n Node) {
	g.nodes[n.ID] = n
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// AddEdge appends an edge unless an identical (source, target, kind) edge
// is already present.
func (g *Graph) AddEdge(e Edge) {
	key := edgeKey{source: e.Source, target: e.Target, kind: e.Kind}
	if _, dup := g.seen[key]; dup {
		return
	}

	g.seen[key] = struct{}{}
	g.edges = append(g.edges, e)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Nodes returns all nodes sorted by ID so that repeated runs over the same
// tree produce identical output.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}

	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	return nodes
}

// Edges returns all edges sorted by (source, target, kind).
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Source != edges[j].Source {
			return edges[i].Source < edges[j].Source
		}

		if edges[i].Target != edges[j].Target {
			return edges[i].Target < edges[j].Target
		}

		return edges[i].Kind < edges[j].Kind
	})

	return edges
}

// CountByKind returns per-kind node counts for the run summary.
func (g *Graph) CountByKind() map[NodeKind]int {
	counts := make(map[NodeKind]int)
	for _, n := range g.nodes {
		counts[n.Kind]++
	}

	return counts
}
