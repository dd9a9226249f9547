package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-astar/internal/astar"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults differ from Default():\n got %+v\nwant %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "astar.yaml")
	data := []byte("grid:\n  size: 12\nsearch:\n  frontier: decrease-key\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Size != 12 {
		t.Errorf("Grid.Size = %d, expected 12", cfg.Grid.Size)
	}
	if cfg.Policy() != astar.PolicyDecreaseKey {
		t.Errorf("Policy() = %v, expected decrease-key", cfg.Policy())
	}
	// Untouched keys keep their defaults.
	if cfg.Animation != Default().Animation {
		t.Errorf("Animation = %+v, expected defaults", cfg.Animation)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("grid:\n  size: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for grid.size 1, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"min size", func(c *Config) { c.Grid.Size = MinGridSize }, true},
		{"max size", func(c *Config) { c.Grid.Size = MaxGridSize }, true},
		{"size too small", func(c *Config) { c.Grid.Size = 0 }, false},
		{"size too large", func(c *Config) { c.Grid.Size = MaxGridSize + 1 }, false},
		{"unknown frontier", func(c *Config) { c.Search.Frontier = "fibonacci" }, false},
		{"empty frontier", func(c *Config) { c.Search.Frontier = "" }, true},
		{"negative fps", func(c *Config) { c.Animation.FPS = -1 }, false},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"negative idle timeout", func(c *Config) { c.SSH.IdleTimeoutMinutes = -5 }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestDelays(t *testing.T) {
	cfg := Default()
	cfg.Animation.FPS = 100
	cfg.Animation.PathFPS = 0
	cfg.SSH.IdleTimeoutMinutes = 2

	if got := cfg.StepDelay(); got != 10*time.Millisecond {
		t.Errorf("StepDelay() = %v, expected 10ms", got)
	}
	if got := cfg.PathDelay(); got != 0 {
		t.Errorf("PathDelay() = %v, expected 0", got)
	}
	if got := cfg.IdleTimeout(); got != 2*time.Minute {
		t.Errorf("IdleTimeout() = %v, expected 2m", got)
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/tmp/x.db")
	if err != nil || got != "/tmp/x.db" {
		t.Errorf("ExpandHome(abs) = %q, %v", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/.astar/a.db")
	if err != nil {
		t.Fatalf("ExpandHome failed: %v", err)
	}
	if want := filepath.Join(home, ".astar", "a.db"); got != want {
		t.Errorf("ExpandHome() = %q, expected %q", got, want)
	}
}
