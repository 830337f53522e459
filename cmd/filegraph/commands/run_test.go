package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agnosticengineer/visualize-files-graph/cmd/filegraph/commands"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	mkErr := os.MkdirAll(filepath.Dir(path), 0o750)
	require.NoError(t, mkErr)

	writeErr := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, writeErr)
}

func execRun(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := commands.NewRunCommand()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestRunCommand_WritesHTML(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, filepath.Join(inputDir, "vars.yml"), "app:\n  port: 8080\n")
	writeFile(t, filepath.Join(inputDir, "motd.j2"), "hello {{ user }}\n")

	outputPath := filepath.Join(t.TempDir(), "graph.html")

	out, err := execRun(t, inputDir, outputPath)
	require.NoError(t, err)

	data, readErr := os.ReadFile(outputPath)
	require.NoError(t, readErr)

	html := string(data)
	require.Contains(t, html, "echarts")
	require.Contains(t, html, "vars.yml")
	require.Contains(t, html, "motd.j2")
	require.Contains(t, html, "user")

	// Summary lists kinds, detected languages, and the output location.
	require.Contains(t, out, "yaml")
	require.Contains(t, out, "template")
	require.Contains(t, out, "YAML")
	require.Contains(t, out, "wrote")
}

func TestRunCommand_MissingInputDir(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "graph.html")

	_, err := execRun(t, filepath.Join(t.TempDir(), "missing"), outputPath)
	require.Error(t, err)

	// No output file on failure.
	_, statErr := os.Stat(outputPath)
	require.True(t, os.IsNotExist(statErr))
}

func TestRunCommand_MissingOutputParent(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, filepath.Join(inputDir, "a.txt"), "x")

	_, err := execRun(t, inputDir, filepath.Join(t.TempDir(), "no", "dir", "graph.html"))
	require.Error(t, err)
}

func TestRunCommand_NoExtract(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, filepath.Join(inputDir, "vars.yml"), "app:\n  port: 8080\n")

	outputPath := filepath.Join(t.TempDir(), "graph.html")

	_, err := execRun(t, "--no-extract", inputDir, outputPath)
	require.NoError(t, err)

	data, readErr := os.ReadFile(outputPath)
	require.NoError(t, readErr)

	// Containment only: the file node is present, its keys are not.
	html := string(data)
	require.Contains(t, html, "vars.yml")
	require.NotContains(t, html, `"port"`)
}

func TestRunCommand_InvalidThemeFlag(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, filepath.Join(inputDir, "a.txt"), "x")

	_, err := execRun(t, "--theme", "sepia", inputDir, filepath.Join(t.TempDir(), "out.html"))
	require.Error(t, err)
}

func TestRunCommand_ConfigFile(t *testing.T) {
	inputDir := t.TempDir()
	writeFile(t, filepath.Join(inputDir, "a.txt"), "x")

	configPath := filepath.Join(t.TempDir(), "cfg.yaml")
	writeFile(t, configPath, "title: Custom Title\ntheme: light\n")

	outputPath := filepath.Join(t.TempDir(), "graph.html")

	_, err := execRun(t, "--config", configPath, inputDir, outputPath)
	require.NoError(t, err)

	data, readErr := os.ReadFile(outputPath)
	require.NoError(t, readErr)
	require.Contains(t, string(data), "Custom Title")
}

func TestRunCommand_RejectsWrongArgCount(t *testing.T) {
	_, err := execRun(t, "only-one-arg")
	require.Error(t, err)
}
