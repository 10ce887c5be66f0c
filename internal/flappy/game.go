package flappy

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Identity used for score storage and display.
const (
	GameID = "flappy"
	Title  = "Flappy Bird"
)

var _ core.Game = (*Game)(nil)

// Game runs a Scene for a host. It implements core.Game for the terminal,
// where the screen is measured in cells, and exposes world-unit entry
// points for hosts that draw in pixels.
type Game struct {
	cfg    config.FlappyConfig
	audio  Audio
	logger *log.Logger

	runtime core.RuntimeConfig
	scene   *Scene
	hud     *HUD
	frame   time.Duration // Simulated time per Step
	paused  bool
}

// New creates a game. audio and logger may be nil.
// Nothing is dispatched until the host calls Reset or Start.
func New(cfg config.FlappyConfig, audio Audio, logger *log.Logger) *Game {
	return &Game{
		cfg:    cfg,
		audio:  audio,
		logger: logger,
		frame:  time.Second / 60,
		hud:    NewHUD(cfg),
		scene:  NewScene(cfg, Playfield{Width: 800, Height: 600}, 0, logger),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return Title
}

// Reset starts a fresh session on a screen measured in cells.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.Start(g.fieldFor(cfg.ScreenW, cfg.ScreenH), cfg.Seed, cfg.TickRate)
}

// SessionSeed returns seed, or a time-based seed when seed is 0.
func SessionSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// Start starts a fresh session on a field measured in world units.
func (g *Game) Start(field Playfield, seed int64, tickRate int) {
	if tickRate <= 0 {
		tickRate = 60
	}
	g.frame = time.Second / time.Duration(tickRate)
	g.paused = false
	g.hud = NewHUD(g.cfg)
	g.scene = NewScene(g.cfg, field, seed, g.logger)
	g.dispatch(g.scene.Reset())
}

// Resize adapts to a new screen size in cells without resetting.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW, g.runtime.ScreenH = width, height
	g.scene.Resize(g.fieldFor(width, height))
}

// ResizeWorld adapts to a new field size in world units.
func (g *Game) ResizeWorld(field Playfield) {
	g.scene.Resize(field)
}

// Step advances the game by one tick of terminal input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.TogglePause()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var acts []Activation
	restart := in.Has(core.ActionRestart) && g.scene.State() == StateGameOver
	if in.Has(core.ActionFlap) || restart {
		acts = append(acts, KeyPress())
	}
	for _, p := range in.Pointers {
		acts = append(acts, PointerPress(g.cellCenter(p)))
	}
	g.ActivateAll(acts)

	g.Advance(g.frame)
	return core.StepResult{State: g.State()}
}

// Activate applies a player trigger and dispatches its effects.
func (g *Game) Activate(a Activation) {
	g.dispatch(g.scene.Activate(a))
}

// ActivateAll applies the triggers collected for one frame. A restart
// from StateGameOver consumes the rest of the frame, so a second trigger
// cannot start the new round.
func (g *Game) ActivateAll(acts []Activation) {
	for _, a := range acts {
		before := g.scene.State()
		g.Activate(a)
		if before == StateGameOver && g.scene.State() != StateGameOver {
			return
		}
	}
}

// Advance runs one frame of dt and dispatches its effects.
func (g *Game) Advance(dt time.Duration) {
	if g.paused {
		return
	}
	g.dispatch(g.scene.Update(dt))
	g.hud.Update(dt)
}

// TogglePause pauses or resumes a running game. Only StatePlaying can be
// paused.
func (g *Game) TogglePause() {
	if g.paused {
		g.paused = false
		return
	}
	if g.scene.State() == StatePlaying {
		g.paused = true
	}
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool { return g.paused }

// Scene returns the running scene.
func (g *Game) Scene() *Scene { return g.scene }

// HUD returns the presentation state.
func (g *Game) HUD() *HUD { return g.hud }

// FrameTime returns the simulated time per Step.
func (g *Game) FrameTime() time.Duration { return g.frame }

// State returns the host-facing summary.
func (g *Game) State() core.GameState {
	st := g.scene.State()
	return core.GameState{
		Phase:    st.String(),
		Score:    g.scene.Score().Value(),
		GameOver: st == StateGameOver,
		Paused:   g.paused,
	}
}

func (g *Game) dispatch(effects []Effect) {
	Dispatch(effects, g.hud, g.audio)
}

func (g *Game) fieldFor(cols, rows int) Playfield {
	return Playfield{
		Width:  float64(cols) * g.cfg.Render.CellWidth,
		Height: float64(rows) * g.cfg.Render.CellHeight,
	}
}

func (g *Game) cellCenter(p core.Point) (x, y float64) {
	return (float64(p.X) + 0.5) * g.cfg.Render.CellWidth, (float64(p.Y) + 0.5) * g.cfg.Render.CellHeight
}
