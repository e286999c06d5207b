package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSchemaJSON(t *testing.T) {
	schema := GetSchemaJSON()
	assert.Contains(t, schema, `"commands"`)
	assert.Contains(t, schema, `"parameter"`)
}

func TestValidateWithSchema_ValidYAML(t *testing.T) {
	result, err := ValidateWithSchema("commands.yml", []byte(yamlTable))
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateWithSchema_ValidJSON(t *testing.T) {
	result, err := ValidateWithSchema("commands.json", []byte(jsonTable))
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidateWithSchema_ValidTOML(t *testing.T) {
	result, err := ValidateWithSchema("commands.toml", []byte(tomlTable))
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidateWithSchema_MissingCommands(t *testing.T) {
	result, err := ValidateWithSchema("commands.yml", []byte(`globals: []`))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
}

func TestValidateWithSchema_ParameterWithoutName(t *testing.T) {
	content := []byte(`
commands:
  vm create:
    parameters:
      - description: missing the name field
`)
	result, err := ValidateWithSchema("commands.yml", content)
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidateWithSchema_FlagMustStartWithDash(t *testing.T) {
	content := []byte(`
commands:
  vm create:
    parameters:
      - name: name
`)
	result, err := ValidateWithSchema("commands.yml", content)
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidateWithSchema_InvalidSyntax(t *testing.T) {
	result, err := ValidateWithSchema("commands.yml", []byte("commands: [broken"))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, "syntax", result.Errors[0].Field)
}

func TestValidateWithSchema_UnsupportedFormat(t *testing.T) {
	_, err := ValidateWithSchema("commands.ini", []byte("x"))
	assert.Error(t, err)
}
