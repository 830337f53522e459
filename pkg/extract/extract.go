// Package extract pulls references out of configuration-style files.
// Each extractor owns a file format and reports the keys or variables a
// file mentions; the walker turns those into reference nodes and edges.
package extract

import (
	"github.com/agnosticengineer/visualize-files-graph/pkg/graph"
)

// Reference is a single identifier extracted from a file.
type Reference struct {
	// Key is the referenced identifier (YAML sub-key, INI key, properties
	// key, or template variable).
	Key string
	// Group is the enclosing context when the format has one (YAML
	// top-level key, INI section). Empty otherwise.
	Group string
	// Value is the rendered value associated with the key, used as edge
	// detail. Empty when the format carries no value.
	Value string
}

// Extractor recognizes and parses one file format.
type Extractor interface {
	// Name identifies the extractor in logs and the formats listing.
	Name() string
	// FileKind is the node kind assigned to matched files.
	FileKind() graph.NodeKind
	// RefKind is the node kind assigned to extracted references.
	RefKind() graph.NodeKind
	// Patterns describes the file names the extractor matches, for help
	// and listing output.
	Patterns() string
	// Match reports whether the extractor handles the given base name.
	Match(name string) bool
	// Extract parses file content and returns the references it mentions.
	Extract(data []byte) ([]Reference, error)
}

// Default returns the extractors enabled out of the box.
func Default() []Extractor {
	return []Extractor{
		&YAMLExtractor{},
		&INIExtractor{},
		&PropertiesExtractor{},
		&TemplateExtractor{},
	}
}

// ForName returns the first extractor matching the base name, or nil.
func ForName(extractors []Extractor, name string) Extractor {
	for _, ex := range extractors {
		if ex.Match(name) {
			return ex
		}
	}

	return nil
}
