// Package config loads the optional user configuration from
// ~/.config/ybb/config.yaml. A missing file is not an error; defaults
// apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/boazy/ybb/internal/geometry"
)

// Config holds the effective settings.
type Config struct {
	// YabaiPath is the yabai binary name or absolute path.
	YabaiPath string `yaml:"yabai_path"`
	// Tolerance is the geometry epsilon in pixels for frame comparisons.
	Tolerance float64 `yaml:"tolerance"`
	// NerdFont enables Nerd Font icons in tree output by default.
	NerdFont bool `yaml:"nerd_font"`
	// Color is the output color mode: auto, always or never.
	Color string `yaml:"color"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		YabaiPath: "yabai",
		Tolerance: geometry.DefaultEpsilon,
		NerdFont:  false,
		Color:     "auto",
	}
}

// DefaultConfigPath returns ~/.config/ybb/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "ybb", "config.yaml"), nil
}

// Load reads the configuration from the standard location.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the configuration from path, applying defaults for
// absent keys. A missing file yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.YabaiPath == "" {
		return fmt.Errorf("yabai_path must not be empty")
	}
	if c.Tolerance <= 0 || c.Tolerance >= 10 {
		return fmt.Errorf("tolerance must be in (0, 10), got %v", c.Tolerance)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	return nil
}
