// Package cli implements the cloudsh command-line interface commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cloudsh/cloudsh/internal/table"
)

// ResolveTablePath finds the command table file. An explicit path wins;
// otherwise the current directory and then the user config directory
// are searched for the supported table names.
func ResolveTablePath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("command table not found: %s", explicit)
		}
		return explicit, nil
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dirs := []string{currentDir, configDir()}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		for _, name := range table.SupportedTableNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
	}

	return "", fmt.Errorf("no command table found; pass --table or place commands.yml in the current directory")
}

// configDir returns the cloudsh config directory under XDG_CONFIG_HOME
func configDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "cloudsh")
}

// DefaultHistoryPath returns where shell history is persisted
func DefaultHistoryPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "cloudsh", "history.json")
}
