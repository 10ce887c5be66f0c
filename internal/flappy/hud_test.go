package flappy

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestHUDPromptPulse(t *testing.T) {
	h := NewHUD(config.DefaultFlappyConfig())
	h.ShowRestartPrompt()

	if h.PromptAlpha() != 1 || h.PromptScale() != 1 {
		t.Fatalf("pulse should start at alpha 1 scale 1, got %v %v", h.PromptAlpha(), h.PromptScale())
	}

	minAlpha, maxScale := 1.0, 1.0
	recovered := false
	for i := 0; i < 300; i++ {
		h.Update(10 * time.Millisecond)

		a, s := h.PromptAlpha(), h.PromptScale()
		if a < 0.5-1e-6 || a > 1+1e-6 {
			t.Fatalf("alpha %v out of [0.5, 1]", a)
		}
		if s < 1-1e-6 || s > 1.1+1e-6 {
			t.Fatalf("scale %v out of [1, 1.1]", s)
		}
		if a < minAlpha {
			minAlpha = a
		}
		if s > maxScale {
			maxScale = s
		}
		if minAlpha < 0.51 && a > 0.99 {
			recovered = true
		}
	}

	if minAlpha > 0.51 {
		t.Errorf("alpha only dropped to %v, expected 0.5", minAlpha)
	}
	if maxScale < 1.09 {
		t.Errorf("scale only grew to %v, expected 1.1", maxScale)
	}
	if !recovered {
		t.Error("pulse should return to full alpha after reaching the minimum")
	}
}

func TestHUDPulseIdleWhenHidden(t *testing.T) {
	h := NewHUD(config.DefaultFlappyConfig())
	h.Update(500 * time.Millisecond)

	if h.PromptAlpha() != 1 {
		t.Errorf("hidden prompt pulsed to alpha %v", h.PromptAlpha())
	}
}

func TestHUDFlapFrames(t *testing.T) {
	h := NewHUD(config.DefaultFlappyConfig())

	want := []BirdFrame{FrameDown, FrameMid, FrameUp, FrameMid, FrameDown}
	h.Update(50 * time.Millisecond)
	for i, f := range want {
		if got := h.Frame(); got != f {
			t.Errorf("frame %d = %v, expected %v", i, got, f)
		}
		h.Update(100 * time.Millisecond)
	}
}

func TestHUDReset(t *testing.T) {
	h := NewHUD(config.DefaultFlappyConfig())
	h.ShowGreeting()
	h.ShowGameOver()
	h.SetScoreText("Score: 2")
	h.ShowRestartPrompt()
	h.Update(700 * time.Millisecond)

	h.Reset()

	if h.GreetingVisible || h.GameOverVisible || h.PromptVisible || h.ScoreText != "" {
		t.Errorf("Reset left state behind: %+v", h)
	}
	if h.PromptAlpha() != 1 {
		t.Errorf("Reset should restart the pulse, alpha = %v", h.PromptAlpha())
	}
}

func TestDispatchRoutesEffects(t *testing.T) {
	hud := NewHUD(config.DefaultFlappyConfig())
	audio := &audioRecorder{}

	Dispatch([]Effect{
		{Kind: EffectShowGreeting},
		{Kind: EffectStartMusic},
		playCue(CueFlap),
		setScoreText("0.125"),
		{Kind: EffectHideGreeting},
		{Kind: EffectShowGameOver},
		{Kind: EffectStopMusic},
		{Kind: EffectShowRestartPrompt},
	}, hud, audio)

	if hud.GreetingVisible || !hud.GameOverVisible || !hud.PromptVisible || hud.ScoreText != "0.125" {
		t.Errorf("unexpected HUD state %+v", hud)
	}
	if audio.starts != 1 || audio.stops != 1 || audio.count(CueFlap) != 1 {
		t.Errorf("unexpected audio calls %+v", audio)
	}

	// Nil sinks drop their effects
	Dispatch([]Effect{playCue(CueHit), {Kind: EffectShowGameOver}}, nil, nil)
}
