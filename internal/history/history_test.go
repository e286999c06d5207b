package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHistory(t *testing.T, max int) *History {
	t.Helper()
	h, err := New(filepath.Join(t.TempDir(), "history.json"), max)
	require.NoError(t, err)
	return h
}

func TestHistory_AddAndLines(t *testing.T) {
	h := newTestHistory(t, 0)

	require.NoError(t, h.Add("vm list"))
	require.NoError(t, h.Add("vm create --name myvm"))

	assert.Equal(t, []string{"vm list", "vm create --name myvm"}, h.Lines())
}

func TestHistory_SkipsEmptyAndRepeats(t *testing.T) {
	h := newTestHistory(t, 0)

	require.NoError(t, h.Add(""))
	require.NoError(t, h.Add("vm list"))
	require.NoError(t, h.Add("vm list"))

	assert.Equal(t, 1, h.Len())
}

func TestHistory_TrimsToMax(t *testing.T) {
	h := newTestHistory(t, 2)

	require.NoError(t, h.Add("one"))
	require.NoError(t, h.Add("two"))
	require.NoError(t, h.Add("three"))

	assert.Equal(t, []string{"two", "three"}, h.Lines())
}

func TestHistory_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	h1, err := New(path, 0)
	require.NoError(t, err)
	require.NoError(t, h1.Add("account"))

	h2, err := New(path, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"account"}, h2.Lines())

	last, ok := h2.Last()
	require.True(t, ok)
	assert.Equal(t, "account", last.Line)
}

func TestHistory_Clear(t *testing.T) {
	h := newTestHistory(t, 0)
	require.NoError(t, h.Add("vm list"))

	require.NoError(t, h.Clear())
	assert.Equal(t, 0, h.Len())
	_, ok := h.Last()
	assert.False(t, ok)
}

func TestHistory_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0600))

	_, err := New(path, 0)
	assert.Error(t, err)
}
