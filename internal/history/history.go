// Package history provides persistent command history for the
// interactive shell.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultMaxEntries bounds the history file size
const DefaultMaxEntries = 1000

// Entry is one executed line
type Entry struct {
	Line      string    `json:"line"`
	Timestamp time.Time `json:"timestamp"`
}

// History manages persistent command history
type History struct {
	path    string
	max     int
	mu      sync.RWMutex
	entries []Entry
}

// New creates a history instance backed by path, loading any existing
// entries. max <= 0 selects DefaultMaxEntries.
func New(path string, max int) (*History, error) {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	h := &History{path: path, max: max}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	if err := h.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return h, nil
}

// Add appends an executed line and persists. Empty lines and immediate
// repeats of the previous line are dropped.
func (h *History) Add(line string) error {
	if line == "" {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if n := len(h.entries); n > 0 && h.entries[n-1].Line == line {
		return nil
	}

	h.entries = append(h.entries, Entry{Line: line, Timestamp: time.Now()})
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
	return h.persist()
}

// Lines returns all lines, oldest first, in the shape interactive
// prompt libraries consume.
func (h *History) Lines() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	lines := make([]string, len(h.entries))
	for i, entry := range h.entries {
		lines[i] = entry.Line
	}
	return lines
}

// Len returns the number of stored entries
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Last returns the most recent entry
func (h *History) Last() (Entry, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Clear removes all entries and persists
func (h *History) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = nil
	return h.persist()
}

// Path returns the backing file path
func (h *History) Path() string {
	return h.path
}

func (h *History) load() error {
	data, err := os.ReadFile(h.path)
	if err != nil {
		return err
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	h.entries = entries
	return nil
}

func (h *History) persist() error {
	data, err := json.MarshalIndent(h.entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(h.path, data, 0600)
}
