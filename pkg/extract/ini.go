package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/agnosticengineer/visualize-files-graph/pkg/graph"
)

// INIExtractor reports section/key relationships from .ini files.
type INIExtractor struct{}

// Name identifies the extractor.
func (i *INIExtractor) Name() string { return "ini" }

// FileKind returns the node kind for INI files.
func (i *INIExtractor) FileKind() graph.NodeKind { return graph.KindINIFile }

// RefKind returns the node kind for extracted INI keys.
func (i *INIExtractor) RefKind() graph.NodeKind { return graph.KindINIKey }

// Patterns describes matched file names.
func (i *INIExtractor) Patterns() string { return "*.ini" }

// Match reports whether the base name is an .ini file.
func (i *INIExtractor) Match(name string) bool {
	return strings.ToLower(filepath.Ext(name)) == ".ini"
}

// Extract parses sections and keys in file order. Keys outside any
// section carry an empty group.
func (i *INIExtractor) Extract(data []byte) ([]Reference, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("parse ini: %w", err)
	}

	var refs []Reference

	for _, section := range file.Sections() {
		group := section.Name()
		if group == ini.DefaultSection {
			group = ""
		}

		for _, key := range section.Keys() {
			refs = append(refs, Reference{Key: key.Name(), Group: group, Value: key.Value()})
		}
	}

	return refs, nil
}
