package commands_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agnosticengineer/visualize-files-graph/cmd/filegraph/commands"
)

func TestFormatsCommand_ListsExtractors(t *testing.T) {
	t.Parallel()

	cmd := commands.NewFormatsCommand()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	err := cmd.Execute()
	require.NoError(t, err)

	listing := out.String()

	for _, want := range []string{"yaml", "ini", "properties", "template", "*.j2"} {
		require.Contains(t, listing, want)
	}
}
