// Package yaml loads flightdocs configuration from a YAML file.
package yaml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alces-flight/flightdocs"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the config file location under the user's config
// directory ($XDG_CONFIG_HOME on Linux).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return filepath.Join("flight", "docs", "config.yml")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "flight", "docs", "config.yml")
}

// Load reads the config file at path. A missing file yields an empty
// config.
func Load(path string) (*flightdocs.Config, error) {
	cfg := &flightdocs.Config{}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, flightdocs.Errorf(flightdocs.EINVALID, "invalid config file %q: %s", path, err)
	}
	return cfg, nil
}
