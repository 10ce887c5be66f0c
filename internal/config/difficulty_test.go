package config

import "testing"

func TestDifficultyDisabledKeepsBaseSpeed(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: false, InitialLevel: 0.7})

	if got := d.Speed(200, 100, 100); got != 200 {
		t.Errorf("Speed() = %v, expected base speed 200", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	tests := []struct {
		score    float64
		expected float64
	}{
		{0, 200},
		{5, 300},
		{10, 400},
		{50, 400}, // clamped at max level
	}

	for _, tc := range tests {
		if got := d.Speed(200, tc.score, 0); got != tc.expected {
			t.Errorf("Speed(score=%v) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 60},
	})

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level at start = %v, expected initial 0.5", got)
	}
	if got := d.Level(0, 60); got != 1.0 {
		t.Errorf("Level at max_at = %v, expected 1.0", got)
	}
}

func TestDifficultyNoneProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "none"},
	})
	if d.IsEnabled() {
		t.Error("progression type none should report disabled")
	}
	if got := d.Level(100, 100); got != 0.3 {
		t.Errorf("Level() = %v, expected initial 0.3", got)
	}
}
