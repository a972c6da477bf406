// Package config loads the optional YAML configuration file for the
// chesscore front end. Command-line flags override file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds front-end options. The rules core has no configuration.
type Config struct {
	// StartFEN sets the initial position; empty means the standard
	// starting position.
	StartFEN string `yaml:"start_fen"`

	// Stats enables persistent game statistics recording.
	Stats bool `yaml:"stats"`

	// DataDir overrides the platform data directory used for storage.
	DataDir string `yaml:"data_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{}
}

// Load reads a config file. A missing file is not an error: the
// defaults are returned so running without any setup just works.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
