// Package config loads optional on-disk defaults for the lister. Flags
// always win over file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults a user can persist instead of repeating flags.
type Config struct {
	// Columns is the default column selection, same tokens as --output.
	Columns []string `yaml:"columns"`

	// Bytes prints sizes as exact byte counts by default.
	Bytes bool `yaml:"bytes"`
}

// DefaultPaths returns the locations searched for a config file, most
// specific first.
func DefaultPaths() []string {
	var paths []string

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "mlsblk", "config.yaml"))
	}
	paths = append(paths, filepath.Join("/etc", "mlsblk", "config.yaml"))

	return paths
}

// Load reads the first config file that exists at the given paths. No file
// at all yields an empty Config, a file that cannot be read or parsed is an
// error.
func Load(paths ...string) (*Config, error) {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
		}

		cfg := &Config{}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}

		return cfg, nil
	}

	return &Config{}, nil
}
