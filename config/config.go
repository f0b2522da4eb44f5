// Package config loads the REPL's optional YAML configuration file.
// None of the required CLI/REPL behavior in spec.md §6 depends on it:
// the front-end runs with the defaults below if no config file is
// given, so this package only ever relaxes, never tightens, the
// contract the core exposes.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds REPL-level settings a user may override. Neither field
// affects the on-disk format or any statement grammar.
type Config struct {
	Prompt        string `yaml:"prompt"`
	DefaultDBPath string `yaml:"default_db_path"`
}

// Default returns the built-in REPL configuration.
func Default() Config {
	return Config{Prompt: "db > "}
}

// Load reads and parses a YAML config file at path, filling in any
// field left blank with the built-in default.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = Default().Prompt
	}
	return cfg, nil
}
