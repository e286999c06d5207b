package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete_Commands(t *testing.T) {
	path := writeTestTable(t, "commands.yml")

	output, err := captureOutput(t, func() error {
		return Complete(CompleteParams{TablePath: path, Line: "vm "})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "create\tCreate a virtual machine")
	assert.Contains(t, output, "list\tList virtual machines")
}

func TestComplete_Parameters(t *testing.T) {
	path := writeTestTable(t, "commands.yml")

	output, err := captureOutput(t, func() error {
		return Complete(CompleteParams{TablePath: path, Line: "vm create --"})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "--name\t[REQUIRED]")
}

func TestComplete_AppNameStripped(t *testing.T) {
	path := writeTestTable(t, "commands.yml")

	output, err := captureOutput(t, func() error {
		return Complete(CompleteParams{TablePath: path, CLI: "mycli", Line: "mycli vm cr"})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "create")
}

func TestComplete_MissingTable(t *testing.T) {
	err := Complete(CompleteParams{TablePath: "/nonexistent/commands.yml", Line: "vm "})
	assert.Error(t, err)
}
