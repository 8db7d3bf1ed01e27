package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := DefaultConfig()
	if *cfg != *want {
		t.Fatalf("expected defaults %+v, got %+v", want, cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
yabai_path: /opt/homebrew/bin/yabai
tolerance: 0.5
nerd_font: true
color: never
`)
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.YabaiPath != "/opt/homebrew/bin/yabai" {
		t.Fatalf("yabai_path not applied: %+v", cfg)
	}
	if cfg.Tolerance != 0.5 || !cfg.NerdFont || cfg.Color != "never" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestPartialFileKeepsRemainingDefaults(t *testing.T) {
	path := writeConfig(t, "nerd_font: true\n")
	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.NerdFont {
		t.Fatalf("override not applied: %+v", cfg)
	}
	if cfg.YabaiPath != "yabai" || cfg.Color != "auto" {
		t.Fatalf("expected untouched defaults, got %+v", cfg)
	}
}

func TestInvalidToleranceRejected(t *testing.T) {
	path := writeConfig(t, "tolerance: -1\n")
	_, err := LoadFromPath(path)
	if err == nil || !strings.Contains(err.Error(), "tolerance") {
		t.Fatalf("expected a tolerance validation error, got %v", err)
	}
}

func TestInvalidColorRejected(t *testing.T) {
	path := writeConfig(t, "color: sometimes\n")
	_, err := LoadFromPath(path)
	if err == nil || !strings.Contains(err.Error(), "color") {
		t.Fatalf("expected a color validation error, got %v", err)
	}
}

func TestMalformedYAMLRejected(t *testing.T) {
	path := writeConfig(t, "color: [broken\n")
	_, err := LoadFromPath(path)
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected a parse error, got %v", err)
	}
}
