// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import "time"

// FlappyConfig contains all configuration for the game.
// Lengths are world units; the terminal host maps them to cells via Render.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Pipes      FlappyPipes      `yaml:"pipes"`
	Bird       FlappyBird       `yaml:"bird"`
	Ground     FlappyGround     `yaml:"ground"`
	Greeting   FlappyGreeting   `yaml:"greeting"`
	Scoring    FlappyScoring    `yaml:"scoring"`
	Timing     FlappyTiming     `yaml:"timing"`
	Render     RenderConfig     `yaml:"render"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines the arcade physics parameters.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`        // Downward acceleration, units/s^2
	FlapVelocity float64 `yaml:"flap_velocity"`  // Velocity set by a flap (negative = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity, 0 disables the cap
	PipeSpeed    float64 `yaml:"pipe_speed"`     // Leftward pipe speed, units/s
}

// FlappyPipes defines how a row of pipes is laid out.
type FlappyPipes struct {
	SegmentCount  int     `yaml:"segment_count"`  // Slots per row
	SegmentStep   float64 `yaml:"segment_step"`   // Vertical distance between slots
	TopOffset     float64 `yaml:"top_offset"`     // Y of slot 0
	SegmentWidth  float64 `yaml:"segment_width"`  // Collision width of a segment
	SegmentHeight float64 `yaml:"segment_height"` // Collision height of a segment
	HoleSlots     int     `yaml:"hole_slots"`     // Possible hole start slots [0, HoleSlots)
	HoleSpan      int     `yaml:"hole_span"`      // Slots skipped by the hole
	MinGapRatio   float64 `yaml:"min_gap_ratio"`  // Gap lower bound, fraction of height
	MaxGapRatio   float64 `yaml:"max_gap_ratio"`  // Gap upper bound, fraction of height
}

// FlappyBird defines the bird's hitbox and visual motion.
type FlappyBird struct {
	XRatio       float64 `yaml:"x_ratio"`       // Spawn x as a fraction of width
	Width        float64 `yaml:"width"`         // Hitbox width
	Height       float64 `yaml:"height"`        // Hitbox height
	RiseAngle    float64 `yaml:"rise_angle"`    // Angle while moving up, degrees
	FallRotation float64 `yaml:"fall_rotation"` // Rotation while falling, degrees/s
	MaxAngle     float64 `yaml:"max_angle"`     // Nose-down limit, degrees
	FrameRate    float64 `yaml:"frame_rate"`    // Flap animation frames per second
}

// FlappyGround defines the ground strip at the bottom of the playfield.
type FlappyGround struct {
	Depth float64 `yaml:"depth"` // Distance from the bottom edge to the ground top
}

// FlappyGreeting defines the clickable greeting panel.
type FlappyGreeting struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyScoring defines the score unit.
type FlappyScoring struct {
	UnitsPerPoint int `yaml:"units_per_point"` // Each passed segment is worth 1/UnitsPerPoint
}

// FlappyTiming defines scene timers.
type FlappyTiming struct {
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	GameOverDelay time.Duration `yaml:"game_over_delay"`
	PulsePeriod   time.Duration `yaml:"pulse_period"`
}

// RenderConfig maps world units to terminal cells.
type RenderConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// AudioConfig controls sound output.
type AudioConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Required bool    `yaml:"required"` // Fail startup when no audio device opens
	Music    bool    `yaml:"music"`
	Volume   float64 `yaml:"volume"` // 0.0 - 1.0
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to pipe speed factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings map to "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
