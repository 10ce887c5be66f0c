package flappy

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Prompt pulse range.
const (
	promptMinAlpha = 0.5
	promptMaxScale = 1.1
)

// BirdFrame is one image of the flap animation.
type BirdFrame int

const (
	FrameDown BirdFrame = iota
	FrameMid
	FrameUp
)

// flapCycle is the animation order, played on a loop.
var flapCycle = [...]BirdFrame{FrameDown, FrameMid, FrameUp, FrameMid}

// HUD is the presentation state shared by the renderers. It implements
// Presenter and also runs the restart prompt pulse and the flap animation.
type HUD struct {
	GreetingVisible bool
	GameOverVisible bool
	PromptVisible   bool
	ScoreText       string

	pulse     *gween.Tween
	pulseBack bool // Running from dim/large back to full/normal
	progress  float64

	frameRate float64
	animTime  time.Duration
}

// NewHUD creates an empty HUD.
func NewHUD(cfg config.FlappyConfig) *HUD {
	return &HUD{
		pulse:     gween.New(0, 1, float32(cfg.Timing.PulsePeriod.Seconds()), ease.Linear),
		frameRate: cfg.Bird.FrameRate,
	}
}

// Reset hides every overlay and clears the score text.
func (h *HUD) Reset() {
	h.GreetingVisible = false
	h.GameOverVisible = false
	h.PromptVisible = false
	h.ScoreText = ""
	h.resetPulse()
}

func (h *HUD) ShowGreeting() { h.GreetingVisible = true }
func (h *HUD) HideGreeting() { h.GreetingVisible = false }
func (h *HUD) ShowGameOver() { h.GameOverVisible = true }

func (h *HUD) SetScoreText(text string) { h.ScoreText = text }

// ShowRestartPrompt shows the prompt and starts its pulse from full alpha.
func (h *HUD) ShowRestartPrompt() {
	h.PromptVisible = true
	h.resetPulse()
}

func (h *HUD) resetPulse() {
	h.pulse.Reset()
	h.pulseBack = false
	h.progress = 0
}

// Update advances the animations by dt.
func (h *HUD) Update(dt time.Duration) {
	h.animTime += dt
	if !h.PromptVisible {
		return
	}

	// Yoyo: run the tween forward, then read it backwards, forever.
	val, finished := h.pulse.Update(float32(dt.Seconds()))
	if h.pulseBack {
		h.progress = 1 - float64(val)
	} else {
		h.progress = float64(val)
	}
	if finished {
		h.pulseBack = !h.pulseBack
		h.pulse.Reset()
	}
}

// PromptAlpha returns the prompt opacity, between 0.5 and 1.
func (h *HUD) PromptAlpha() float64 {
	return 1 - h.progress*(1-promptMinAlpha)
}

// PromptScale returns the prompt scale, between 1 and 1.1.
func (h *HUD) PromptScale() float64 {
	return 1 + h.progress*(promptMaxScale-1)
}

// Frame returns the current flap animation image.
func (h *HUD) Frame() BirdFrame {
	if h.frameRate <= 0 {
		return FrameMid
	}
	n := int(h.animTime.Seconds() * h.frameRate)
	return flapCycle[n%len(flapCycle)]
}
