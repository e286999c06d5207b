package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_WithTable(t *testing.T) {
	path := writeTestTable(t, "commands.yml")
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	output, err := captureOutput(t, func() error {
		return Status(StatusParams{TablePath: path, CLI: "mycli", Version: "1.0.0"})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "1.0.0")
	assert.Contains(t, output, "mycli")
	assert.Contains(t, output, "Commands")
}

func TestStatus_MissingTable(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	missing := filepath.Join(t.TempDir(), "commands.yml")

	output, err := captureOutput(t, func() error {
		return Status(StatusParams{TablePath: missing, Version: "1.0.0"})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Not found")
}
