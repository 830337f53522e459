package render

import (
	"github.com/agnosticengineer/visualize-files-graph/pkg/graph"
)

// Theme selects the page background and label colors.
type Theme string

// Available themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ValidTheme reports whether the given theme name is supported.
func ValidTheme(theme string) bool {
	return Theme(theme) == ThemeLight || Theme(theme) == ThemeDark
}

type themeConfig struct {
	Background string
	LabelColor string
	EdgeColor  string
}

var themes = map[Theme]themeConfig{
	ThemeLight: {
		Background: "#fafaf9", // stone-50.
		LabelColor: "#1c1917", // stone-900.
		EdgeColor:  "#a8a29e", // stone-400.
	},
	ThemeDark: {
		Background: "#1c1917", // stone-900.
		LabelColor: "#e7e5e4", // stone-200.
		EdgeColor:  "#57534e", // stone-600.
	},
}

func configFor(theme Theme) themeConfig {
	cfg, ok := themes[theme]
	if !ok {
		return themes[ThemeDark]
	}

	return cfg
}

// Node symbol sizes: containers largest, data files larger than the keys
// and variables extracted from them.
const (
	sizeDirectory = 20
	sizeFile      = 15
	sizeReference = 10
)

type nodeStyle struct {
	Color string
	Size  float32
}

var kindStyles = map[graph.NodeKind]nodeStyle{
	graph.KindDirectory:   {Color: "#8d99ae", Size: sizeDirectory},
	graph.KindFile:        {Color: "#adb5bd", Size: sizeFile},
	graph.KindYAMLFile:    {Color: "lightblue", Size: sizeFile},
	graph.KindYAMLKey:     {Color: "lightgreen", Size: sizeReference},
	graph.KindTemplate:    {Color: "orange", Size: sizeFile},
	graph.KindVariable:    {Color: "yellow", Size: sizeReference},
	graph.KindINIFile:     {Color: "lightcoral", Size: sizeFile},
	graph.KindINIKey:      {Color: "salmon", Size: sizeReference},
	graph.KindProperties:  {Color: "lightgrey", Size: sizeFile},
	graph.KindPropertyKey: {Color: "lightpink", Size: sizeReference},
}

func styleFor(kind graph.NodeKind) nodeStyle {
	style, ok := kindStyles[kind]
	if !ok {
		return nodeStyle{Color: "lightblue", Size: sizeReference}
	}

	return style
}
