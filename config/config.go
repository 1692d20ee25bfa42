// Package config loads rssr settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sonnes/rssr/render"
	"gopkg.in/yaml.v3"
)

// Config holds settings shared by every run. Command-line flags override
// values loaded from file.
type Config struct {
	// Format selects the renderer: text, json or terminal.
	Format string `yaml:"format"`

	// Limit caps entries per feed. Zero means unlimited.
	Limit int `yaml:"limit"`

	// Timeout bounds each HTTP fetch, e.g. "15s".
	Timeout time.Duration `yaml:"timeout"`

	// Log is the log level: debug, info, warn or error.
	Log string `yaml:"log"`

	// Sources are feed URLs or file paths rendered when none are given on
	// the command line.
	Sources []string `yaml:"sources"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load reads and validates the YAML file at path. An empty path returns
// Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	setDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	log.Debug("loaded config", "path", path, "sources", len(cfg.Sources))
	return &cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Format == "" {
		cfg.Format = string(render.FormatText)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Log == "" {
		cfg.Log = "error"
	}
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if _, err := render.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit must be non-negative")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}
	if _, err := log.ParseLevel(c.Log); err != nil {
		return err
	}
	for i, s := range c.Sources {
		if s == "" {
			return fmt.Errorf("source at index %d is empty", i)
		}
	}
	return nil
}
