// Package config loads questc settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for config files whose extension is neither
// TOML nor YAML.
var ErrUnknownFormat = errors.New("unknown config format")

// Config holds every questc setting.
type Config struct {
	Log    Log    `toml:"log" yaml:"log"`
	Output Output `toml:"output" yaml:"output"`
}

// Log configures the logger (see package logs).
type Log struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	File   string `toml:"file" yaml:"file"`
}

// Output selects the sections printed by `questc parse`.
type Output struct {
	Tokens  bool `toml:"tokens" yaml:"tokens"`
	AST     bool `toml:"ast" yaml:"ast"`
	Symbols bool `toml:"symbols" yaml:"symbols"`
	Color   bool `toml:"color" yaml:"color"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Log: Log{
			Level:  "warn",
			Format: "text",
		},
		Output: Output{
			Tokens:  true,
			AST:     true,
			Symbols: true,
			Color:   true,
		},
	}
}

// Load reads path on top of the defaults. The decoder is chosen by extension:
// .toml, or .yaml/.yml. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(data, filepath.Ext(path), &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals data into cfg according to ext (".toml", ".yaml", ".yml").
// Keys absent from data keep their current values.
func Decode(data []byte, ext string, cfg *Config) error {
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse TOML: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse YAML: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	return nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}
	return nil
}
