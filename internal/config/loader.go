package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LoadFlappy loads the game configuration.
// Search order: customPath -> ~/.flappy/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped silently when missing or malformed.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath("flappy.yaml"), filepath.Join("configs", "flappy.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(defaultFlappyYAML, &cfg); err != nil {
		return DefaultFlappyConfig(), nil
	}
	return cfg, cfg.Validate()
}

// loadFile parses a YAML file on top of the built-in defaults, so partial
// files only override the keys they mention.
func loadFile(path string) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validate checks the values the game cannot run without.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	p := c.Pipes
	check(p.SegmentCount > 0, "pipes.segment_count must be positive, got %d", p.SegmentCount)
	check(p.SegmentStep > 0, "pipes.segment_step must be positive, got %v", p.SegmentStep)
	check(p.SegmentWidth > 0 && p.SegmentHeight > 0, "pipe segment size must be positive")
	check(p.HoleSlots > 0, "pipes.hole_slots must be positive, got %d", p.HoleSlots)
	check(p.HoleSpan > 0, "pipes.hole_span must be positive, got %d", p.HoleSpan)
	check(p.HoleSlots-1+p.HoleSpan <= p.SegmentCount,
		"hole (slots %d, span %d) does not fit %d segments", p.HoleSlots, p.HoleSpan, p.SegmentCount)
	check(p.MinGapRatio >= 0 && p.MinGapRatio <= p.MaxGapRatio && p.MaxGapRatio <= 1,
		"gap ratio band [%v, %v] must lie within [0, 1]", p.MinGapRatio, p.MaxGapRatio)

	b := c.Bird
	check(b.Width > 0 && b.Height > 0, "bird size must be positive")
	check(b.XRatio > 0 && b.XRatio < 1, "bird.x_ratio must be in (0, 1), got %v", b.XRatio)
	check(b.FrameRate >= 0, "bird.frame_rate must not be negative, got %v", b.FrameRate)
	check(c.Ground.Depth >= 0, "ground.depth must not be negative, got %v", c.Ground.Depth)

	check(c.Scoring.UnitsPerPoint > 0, "scoring.units_per_point must be positive, got %d", c.Scoring.UnitsPerPoint)
	check(c.Timing.SpawnInterval > 0, "timing.spawn_interval must be positive, got %v", c.Timing.SpawnInterval)
	check(c.Timing.GameOverDelay >= 0, "timing.game_over_delay must not be negative")
	check(c.Timing.PulsePeriod > 0, "timing.pulse_period must be positive")
	check(c.Render.CellWidth > 0 && c.Render.CellHeight > 0, "render cell size must be positive")
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be in [0, 1], got %v", c.Audio.Volume)

	return errors.Join(errs...)
}
