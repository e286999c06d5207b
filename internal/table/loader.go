package table

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/cloudsh/cloudsh/internal/serrors"
)

// SupportedTableNames contains supported table file names (in order of
// preference) when resolving a table from a directory
var SupportedTableNames = []string{
	"commands.yml",
	"commands.yaml",
	"commands.toml",
	"commands.json",
}

// cachedTable stores a parsed table with its modification time and hash
type cachedTable struct {
	table   *Table
	modTime time.Time
	size    int64
	hash    string
}

// Loader handles loading and parsing command table files
type Loader struct {
	parsedCache map[string]*cachedTable
}

// New creates a new table loader
func New() *Loader {
	return &Loader{
		parsedCache: make(map[string]*cachedTable),
	}
}

func parserFor(ext string) (koanf.Parser, error) {
	switch strings.ToLower(ext) {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported table format: %s", ext)
	}
}

// Load reads and parses a command table file. Parsed tables are cached
// and re-read only when the file's modtime or size changes.
func (l *Loader) Load(path string) (*Table, error) {
	if cached, exists := l.parsedCache[path]; exists {
		fileInfo, err := os.Stat(path)
		if err == nil && !fileInfo.ModTime().After(cached.modTime) && fileInfo.Size() == cached.size {
			return cached.table, nil
		}
		delete(l.parsedCache, path)
	}

	parser, err := parserFor(filepath.Ext(path))
	if err != nil {
		return nil, serrors.NewTableError(path, "failed to load table", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, serrors.NewTableError(path, "failed to load table", err)
	}

	tbl, err := unmarshalTable(k)
	if err != nil {
		return nil, serrors.NewTableError(path, "failed to parse table", err)
	}

	if fileInfo, err := os.Stat(path); err == nil {
		var hashStr string
		if data, hashErr := os.ReadFile(path); hashErr == nil {
			hash := sha256.Sum256(data)
			hashStr = hex.EncodeToString(hash[:])
		}
		l.parsedCache[path] = &cachedTable{
			table:   tbl,
			modTime: fileInfo.ModTime(),
			size:    fileInfo.Size(),
			hash:    hashStr,
		}
	}

	return tbl, nil
}

// LoadBytes parses a command table from raw bytes. The format is given
// as a file extension ("yml", "json", "toml").
func (l *Loader) LoadBytes(data []byte, format string) (*Table, error) {
	parser, err := parserFor("." + strings.TrimPrefix(format, "."))
	if err != nil {
		return nil, serrors.NewTableError("", "failed to load table", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, serrors.NewTableError("", "failed to load table", err)
	}

	return unmarshalTable(k)
}

// Reload drops the cached entry for path and loads it again. Used when
// the underlying CLI's command table changes (context switch).
func (l *Loader) Reload(path string) (*Table, error) {
	delete(l.parsedCache, path)
	return l.Load(path)
}

// Hash computes the SHA-256 hash of a table file, reusing the cache
// when the file is unchanged
func (l *Loader) Hash(path string) (string, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return "", err
	}

	if cached, exists := l.parsedCache[path]; exists {
		if !fileInfo.ModTime().After(cached.modTime) && fileInfo.Size() == cached.size && cached.hash != "" {
			return cached.hash, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}

func unmarshalTable(k *koanf.Koanf) (*Table, error) {
	tbl := &Table{
		Commands: make(map[string]Command),
	}
	if err := k.Unmarshal("", tbl); err != nil {
		return nil, fmt.Errorf("failed to unmarshal table: %w", err)
	}
	tbl.applyDefaults()
	return tbl, nil
}
