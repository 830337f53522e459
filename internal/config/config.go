// Package config loads tool settings from file, environment, and defaults.
package config

import (
	"errors"
	"fmt"

	"github.com/agnosticengineer/visualize-files-graph/pkg/render"
)

// Defaults applied when neither file nor environment sets a value.
const (
	DefaultTheme       = "dark"
	DefaultTitle       = "File Relationship Graph"
	DefaultExtract     = true
	DefaultHidden      = false
	DefaultMaxFileSize = 1 << 20 // 1 MiB.
)

// ErrInvalidTheme is returned for theme values other than light or dark.
var ErrInvalidTheme = errors.New("invalid theme (want light or dark)")

// ErrNegativeMaxFileSize is returned for negative extraction size caps.
var ErrNegativeMaxFileSize = errors.New("max_file_size must not be negative")

// Config holds all tool settings.
type Config struct {
	// Theme selects the output page theme: light or dark.
	Theme string `mapstructure:"theme"`
	// Title is the rendered page title.
	Title string `mapstructure:"title"`
	// Extract enables reference extraction from known file formats.
	Extract bool `mapstructure:"extract"`
	// IncludeHidden scans dot-prefixed entries.
	IncludeHidden bool `mapstructure:"include_hidden"`
	// MaxFileSize caps the size of files read during extraction.
	MaxFileSize int64 `mapstructure:"max_file_size"`
}

// Validate checks settings for internally consistent values.
func (c *Config) Validate() error {
	if !render.ValidTheme(c.Theme) {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, c.Theme)
	}

	if c.MaxFileSize < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeMaxFileSize, c.MaxFileSize)
	}

	return nil
}
