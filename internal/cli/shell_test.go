package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShell_MissingTable(t *testing.T) {
	err := Shell(ShellParams{TablePath: "/nonexistent/commands.yml", CLI: "mycli"})
	assert.Error(t, err)
}

func TestShell_BrokenTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.yml")
	require.NoError(t, os.WriteFile(path, []byte("commands: [broken"), 0644))

	err := Shell(ShellParams{TablePath: path, CLI: "mycli"})
	assert.Error(t, err)
}
