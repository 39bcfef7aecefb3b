package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg != DefaultHuntConfig() {
		t.Errorf("embedded defaults differ from DefaultHuntConfig():\n got %+v\nwant %+v", cfg, DefaultHuntConfig())
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".trihunt", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("timer:\n  limit_seconds: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Timer.LimitSeconds != 30 {
		t.Errorf("user config should set limit to 30, got %v", cfg.Timer.LimitSeconds)
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("obstacles:\n  count: 2\nplayer:\n  step: 0.02\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Obstacles.Count != 2 {
		t.Errorf("Obstacles.Count = %d, expected 2", cfg.Obstacles.Count)
	}
	if cfg.Player.Step != 0.02 {
		t.Errorf("Player.Step = %v, expected 0.02", cfg.Player.Step)
	}
	// Untouched sections keep their defaults
	if cfg.Collectibles.Count != 10 || cfg.Obstacles.Radius != 0.1 {
		t.Errorf("missing values should keep defaults, got %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("player: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Error("Load() should fail for malformed yaml")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  radius: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HuntConfig)
		valid  bool
	}{
		{"defaults", func(*HuntConfig) {}, true},
		{"no obstacles", func(c *HuntConfig) { c.Obstacles.Count = 0 }, true},
		{"unbounded placement", func(c *HuntConfig) { c.Placement.MaxAttempts = 0 }, true},
		{"negative player radius", func(c *HuntConfig) { c.Player.Radius = -0.1 }, false},
		{"zero step", func(c *HuntConfig) { c.Player.Step = 0 }, false},
		{"zero collectible radius", func(c *HuntConfig) { c.Collectibles.Radius = 0 }, false},
		{"negative obstacle count", func(c *HuntConfig) { c.Obstacles.Count = -1 }, false},
		{"zero time limit", func(c *HuntConfig) { c.Timer.LimitSeconds = 0 }, false},
		{"negative attempts", func(c *HuntConfig) { c.Placement.MaxAttempts = -5 }, false},
		{"negative hold window", func(c *HuntConfig) { c.Input.HoldWindowMS = -1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHuntConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestMarshalParses(t *testing.T) {
	cfg := DefaultHuntConfig()
	cfg.Timer.LimitSeconds = 42

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("Parse(Marshal(cfg)) = %+v, expected %+v", back, cfg)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name      string
		limit     float64
		obstacles int
	}{
		{"easy", 90, 3},
		{"normal", 60, 5},
		{"HARD", 45, 8},
		{"", 60, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			preset, err := ParsePreset(tc.name)
			if err != nil {
				t.Fatalf("ParsePreset(%q) failed: %v", tc.name, err)
			}
			cfg := DefaultHuntConfig()
			ApplyPreset(&cfg, preset)
			if cfg.Timer.LimitSeconds != tc.limit {
				t.Errorf("limit = %v, expected %v", cfg.Timer.LimitSeconds, tc.limit)
			}
			if cfg.Obstacles.Count != tc.obstacles {
				t.Errorf("obstacles = %d, expected %d", cfg.Obstacles.Count, tc.obstacles)
			}
		})
	}

	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ParsePreset(nightmare) error = %v, expected ErrUnknownPreset", err)
	}
}

func TestHoldWindow(t *testing.T) {
	in := InputConfig{HoldWindowMS: 150}
	if got := in.HoldWindow().Milliseconds(); got != 150 {
		t.Errorf("HoldWindow() = %dms, expected 150ms", got)
	}
}
