package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"

	"gz/pkg/interpreter"
)

// Config carries run options loadable from a YAML file. Command-line
// flags override whatever the file sets.
type Config struct {
	Entry    string `yaml:"entry"`
	MaxDepth int    `yaml:"max_depth"`
	MaxSteps int    `yaml:"max_steps"`
	Memory   string `yaml:"memory"`
	Verbose  bool   `yaml:"verbose"`
	NoColor  bool   `yaml:"no_color"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Entry:    interpreter.DefaultEntry,
		MaxDepth: interpreter.DefaultMaxDepth,
	}
}

// Load reads a YAML config file. An empty path or a missing file
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Entry == "" {
		cfg.Entry = interpreter.DefaultEntry
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = interpreter.DefaultMaxDepth
	}

	return cfg, nil
}
