package extract

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/agnosticengineer/visualize-files-graph/pkg/graph"
)

const propertyParts = 2

// PropertiesExtractor reports key/value pairs from Java-style
// .property/.properties files. Lines without '=' are skipped.
type PropertiesExtractor struct{}

// Name identifies the extractor.
func (p *PropertiesExtractor) Name() string { return "properties" }

// FileKind returns the node kind for properties files.
func (p *PropertiesExtractor) FileKind() graph.NodeKind { return graph.KindProperties }

// RefKind returns the node kind for extracted property keys.
func (p *PropertiesExtractor) RefKind() graph.NodeKind { return graph.KindPropertyKey }

// Patterns describes matched file names.
func (p *PropertiesExtractor) Patterns() string { return "*.property, *.properties" }

// Match reports whether the base name is a properties file.
func (p *PropertiesExtractor) Match(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))

	return ext == ".property" || ext == ".properties"
}

// Extract splits each line on the first '='.
func (p *PropertiesExtractor) Extract(data []byte) ([]Reference, error) {
	var refs []Reference

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, "=") {
			continue
		}

		parts := strings.SplitN(line, "=", propertyParts)
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if key == "" {
			continue
		}

		refs = append(refs, Reference{Key: key, Value: value})
	}

	scanErr := scanner.Err()
	if scanErr != nil {
		return nil, fmt.Errorf("scan properties: %w", scanErr)
	}

	return refs, nil
}
