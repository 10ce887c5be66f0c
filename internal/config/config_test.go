package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	// Point HOME somewhere empty so no user config is picked up
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}

	want := DefaultFlappyConfig()
	if cfg != want {
		t.Errorf("embedded defaults differ from built-ins:\n got %+v\nwant %+v", cfg, want)
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultFlappyConfig().Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := []byte("physics:\n  gravity: 1200\ntiming:\n  spawn_interval: 1s\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy(%q) failed: %v", path, err)
	}

	if cfg.Physics.Gravity != 1200 {
		t.Errorf("Gravity = %v, expected 1200", cfg.Physics.Gravity)
	}
	if cfg.Timing.SpawnInterval != time.Second {
		t.Errorf("SpawnInterval = %v, expected 1s", cfg.Timing.SpawnInterval)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.FlapVelocity != -350 {
		t.Errorf("FlapVelocity = %v, expected default -350", cfg.Physics.FlapVelocity)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := LoadFlappy(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := []byte("pipes:\n  min_gap_ratio: 0.9\n  max_gap_ratio: 0.2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFlappy(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
	}{
		{"zero segments", func(c *FlappyConfig) { c.Pipes.SegmentCount = 0 }},
		{"hole does not fit", func(c *FlappyConfig) { c.Pipes.HoleSlots = 10 }},
		{"zero units per point", func(c *FlappyConfig) { c.Scoring.UnitsPerPoint = 0 }},
		{"zero spawn interval", func(c *FlappyConfig) { c.Timing.SpawnInterval = 0 }},
		{"bird ratio out of range", func(c *FlappyConfig) { c.Bird.XRatio = 1.5 }},
		{"loud volume", func(c *FlappyConfig) { c.Audio.Volume = 2 }},
		{"gap above field", func(c *FlappyConfig) { c.Pipes.MaxGapRatio = 1.5 }},
		{"negative ground depth", func(c *FlappyConfig) { c.Ground.Depth = -1 }},
		{"negative frame rate", func(c *FlappyConfig) { c.Bird.FrameRate = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultFlappyConfig()

	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: enabled=%v level=%v", cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable difficulty")
	}

	before := cfg
	ApplyPreset(&cfg, "")
	if cfg != before {
		t.Error("empty preset should not change config")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("normal") != DifficultyNormal {
		t.Error("normal should parse")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should parse to empty")
	}
}
