package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. The values
// reproduce the classic browser game on an 800x600 playfield.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      1000,
			FlapVelocity: -350,
			MaxFallSpeed: 0,
			PipeSpeed:    200,
		},
		Pipes: FlappyPipes{
			SegmentCount:  10,
			SegmentStep:   60,
			TopOffset:     10,
			SegmentWidth:  52,
			SegmentHeight: 60,
			HoleSlots:     5,
			HoleSpan:      2,
			MinGapRatio:   0.4,
			MaxGapRatio:   0.7,
		},
		Bird: FlappyBird{
			XRatio:       0.125,
			Width:        68,
			Height:       48,
			RiseAngle:    -33,
			FallRotation: 150,
			MaxAngle:     90,
			FrameRate:    10,
		},
		Ground: FlappyGround{
			Depth: 88,
		},
		Greeting: FlappyGreeting{
			Width:  184,
			Height: 267,
		},
		Scoring: FlappyScoring{
			UnitsPerPoint: 8,
		},
		Timing: FlappyTiming{
			SpawnInterval: 1500 * time.Millisecond,
			GameOverDelay: 2000 * time.Millisecond,
			PulsePeriod:   1000 * time.Millisecond,
		},
		Render: RenderConfig{
			CellWidth:  10,
			CellHeight: 25,
		},
		Audio: AudioConfig{
			Enabled: true,
			Music:   true,
			Volume:  0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.75,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
