package table

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cloudsh/cloudsh/internal/serrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlTable = `
commands:
  vm create:
    description: Create a virtual machine
    parameters:
      - name: --name
        aliases: ["-n"]
        required: true
  vm list:
    description: List virtual machines
`

const jsonTable = `{
  "commands": {
    "account show": {
      "description": "Show the active subscription",
      "parameters": [
        {"name": "--subscription", "aliases": ["-s"]}
      ]
    }
  }
}`

const tomlTable = `
[commands."storage account list"]
description = "List storage accounts"

[[commands."storage account list".parameters]]
name = "--resource-group"
aliases = ["-g"]
`

func writeTable(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoader_Load_YAML(t *testing.T) {
	path := writeTable(t, "commands.yml", yamlTable)

	tbl, err := New().Load(path)
	require.NoError(t, err)
	assert.Len(t, tbl.Commands, 2)
	assert.Equal(t, "Create a virtual machine", tbl.Description("vm create"))

	param, ok := tbl.Resolve("vm create", "-n")
	require.True(t, ok)
	assert.True(t, param.Required)
}

func TestLoader_Load_JSON(t *testing.T) {
	path := writeTable(t, "commands.json", jsonTable)

	tbl, err := New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Show the active subscription", tbl.Description("account show"))
}

func TestLoader_Load_TOML(t *testing.T) {
	path := writeTable(t, "commands.toml", tomlTable)

	tbl, err := New().Load(path)
	require.NoError(t, err)
	assert.Contains(t, tbl.ParameterNames("storage account list"), "-g")
}

func TestLoader_Load_UnsupportedFormat(t *testing.T) {
	path := writeTable(t, "commands.ini", "[commands]")

	_, err := New().Load(path)
	require.Error(t, err)

	var terr *serrors.TableError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, path, terr.Path)
}

func TestLoader_Load_InvalidSyntax(t *testing.T) {
	path := writeTable(t, "commands.yml", "commands: [not: a: table")

	_, err := New().Load(path)
	require.Error(t, err)

	var terr *serrors.TableError
	assert.ErrorAs(t, err, &terr)
}

func TestLoader_Load_CachesByModTime(t *testing.T) {
	path := writeTable(t, "commands.yml", yamlTable)
	loader := New()

	first, err := loader.Load(path)
	require.NoError(t, err)

	second, err := loader.Load(path)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLoader_Reload_PicksUpChanges(t *testing.T) {
	path := writeTable(t, "commands.yml", yamlTable)
	loader := New()

	tbl, err := loader.Load(path)
	require.NoError(t, err)
	assert.Len(t, tbl.Commands, 2)

	updated := yamlTable + `
  vm delete:
    description: Delete a virtual machine
`
	// ensure a different modtime even on coarse filesystems
	require.NoError(t, os.WriteFile(path, []byte(updated), 0644))
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	tbl, err = loader.Reload(path)
	require.NoError(t, err)
	assert.Len(t, tbl.Commands, 3)
}

func TestLoader_LoadBytes(t *testing.T) {
	tbl, err := New().LoadBytes([]byte(yamlTable), "yml")
	require.NoError(t, err)
	assert.Len(t, tbl.Commands, 2)

	_, err = New().LoadBytes([]byte(yamlTable), "ini")
	assert.Error(t, err)
}

func TestLoader_Hash(t *testing.T) {
	path := writeTable(t, "commands.yml", yamlTable)
	loader := New()

	_, err := loader.Load(path)
	require.NoError(t, err)

	hash, err := loader.Hash(path)
	require.NoError(t, err)
	assert.Len(t, hash, 64)

	again, err := loader.Hash(path)
	require.NoError(t, err)
	assert.Equal(t, hash, again)
}
