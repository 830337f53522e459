package extract

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/agnosticengineer/visualize-files-graph/pkg/graph"
)

// YAMLExtractor reports key relationships from YAML documents: each
// top-level mapping key references its sub-keys, list values are rendered
// as a single reference, and scalar values reference the value itself.
type YAMLExtractor struct{}

// Name identifies the extractor.
func (y *YAMLExtractor) Name() string { return "yaml" }

// FileKind returns the node kind for YAML files.
func (y *YAMLExtractor) FileKind() graph.NodeKind { return graph.KindYAMLFile }

// RefKind returns the node kind for extracted YAML keys.
func (y *YAMLExtractor) RefKind() graph.NodeKind { return graph.KindYAMLKey }

// Patterns describes matched file names.
func (y *YAMLExtractor) Patterns() string { return "*.yml, *.yaml" }

// Match reports whether the base name looks like a YAML file.
func (y *YAMLExtractor) Match(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))

	return ext == ".yml" || ext == ".yaml"
}

// Extract parses the document and walks its top level.
func (y *YAMLExtractor) Extract(data []byte) ([]Reference, error) {
	var doc any

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	switch value := doc.(type) {
	case map[string]any:
		return yamlMappingRefs(value), nil
	case []any:
		return yamlSequenceRefs(value), nil
	default:
		return nil, nil
	}
}

func yamlMappingRefs(mapping map[string]any) []Reference {
	keys := make([]string, 0, len(mapping))
	for key := range mapping {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var refs []Reference

	for _, key := range keys {
		switch value := mapping[key].(type) {
		case map[string]any:
			subKeys := make([]string, 0, len(value))
			for subKey := range value {
				subKeys = append(subKeys, subKey)
			}

			sort.Strings(subKeys)

			for _, subKey := range subKeys {
				refs = append(refs, Reference{
					Key:   subKey,
					Group: key,
					Value: renderYAMLValue(value[subKey]),
				})
			}
		case []any:
			refs = append(refs, Reference{Key: renderYAMLValue(value), Group: key})
		default:
			refs = append(refs, Reference{Key: renderYAMLValue(value), Group: key})
		}
	}

	return refs
}

func yamlSequenceRefs(sequence []any) []Reference {
	var refs []Reference

	for index, item := range sequence {
		group := fmt.Sprintf("ListItem%d", index)

		mapping, ok := item.(map[string]any)
		if !ok {
			refs = append(refs, Reference{Key: renderYAMLValue(item), Group: group})

			continue
		}

		keys := make([]string, 0, len(mapping))
		for key := range mapping {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		for _, key := range keys {
			refs = append(refs, Reference{
				Key:   key,
				Group: group,
				Value: renderYAMLValue(mapping[key]),
			})
		}
	}

	return refs
}

func renderYAMLValue(value any) string {
	if value == nil {
		return ""
	}

	return fmt.Sprintf("%v", value)
}
