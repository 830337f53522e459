package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agnosticengineer/visualize-files-graph/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")

	writeErr := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, writeErr)

	return path
}

func TestLoad_Defaults(t *testing.T) {
	// Keep a user-level config file out of the search path.
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, config.DefaultTheme, cfg.Theme)
	require.Equal(t, config.DefaultTitle, cfg.Title)
	require.True(t, cfg.Extract)
	require.False(t, cfg.IncludeHidden)
	require.Equal(t, int64(config.DefaultMaxFileSize), cfg.MaxFileSize)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "theme: light\ntitle: Playbook Map\nextract: false\nmax_file_size: 2048\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "light", cfg.Theme)
	require.Equal(t, "Playbook Map", cfg.Title)
	require.False(t, cfg.Extract)
	require.Equal(t, int64(2048), cfg.MaxFileSize)

	// Untouched keys keep their defaults.
	require.False(t, cfg.IncludeHidden)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "theme: light\n")

	t.Setenv("FILEGRAPH_THEME", "dark")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "dark", cfg.Theme)
}

func TestLoad_InvalidTheme(t *testing.T) {
	path := writeConfig(t, "theme: sepia\n")

	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalidTheme)
}

func TestLoad_NegativeMaxFileSize(t *testing.T) {
	path := writeConfig(t, "max_file_size: -1\n")

	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrNegativeMaxFileSize)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "theme: [broken\n")

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := config.Config{Theme: "dark"}
	require.NoError(t, valid.Validate())

	invalid := config.Config{Theme: "dark", MaxFileSize: -5}
	require.ErrorIs(t, invalid.Validate(), config.ErrNegativeMaxFileSize)
}
