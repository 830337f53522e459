package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestRootCommand_WrongArgCount(t *testing.T) {
	for _, args := range [][]string{
		{"only-input"},
		{"input", "out.html", "extra"},
	} {
		_, err := execRoot(t, args...)
		require.ErrorIs(t, err, errWrongArgCount)
	}
}

func TestRootCommand_NoArgsShowsHelp(t *testing.T) {
	out, err := execRoot(t)
	require.NoError(t, err)
	require.Contains(t, out, "filegraph <input-dir> <output-html>")
}

func TestRootCommand_ScanWritesHTML(t *testing.T) {
	inputDir := t.TempDir()

	writeErr := os.WriteFile(filepath.Join(inputDir, "vars.yml"), []byte("app:\n  port: 8080\n"), 0o600)
	require.NoError(t, writeErr)

	outputPath := filepath.Join(t.TempDir(), "graph.html")

	_, err := execRoot(t, inputDir, outputPath)
	require.NoError(t, err)

	data, readErr := os.ReadFile(outputPath)
	require.NoError(t, readErr)
	require.Contains(t, string(data), "echarts")
}
