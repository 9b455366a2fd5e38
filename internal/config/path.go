// Package config loads passgen settings and resolves named presets.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSaveFile is offered by the interactive save prompt.
const DefaultSaveFile = "passwords.txt"

// ExpandPath expands a leading ~ and $VAR references in a file path.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return os.ExpandEnv(path)
}

// Dir returns the directory searched for config.yaml.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "passgen"), nil
}
