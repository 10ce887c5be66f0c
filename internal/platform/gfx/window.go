// Package gfx hosts the game in a desktop window with Ebitengine. The
// window is measured in world units one to one, so resizing it resizes
// the playfield.
package gfx

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Default window size in pixels.
const (
	WindowWidth  = 800
	WindowHeight = 600
)

var (
	skyColor    = color.RGBA{R: 78, G: 192, B: 202, A: 255}
	pipeColor   = color.RGBA{R: 94, G: 160, B: 48, A: 255}
	pipeEdge    = color.RGBA{R: 140, G: 214, B: 76, A: 255}
	grassColor  = color.RGBA{R: 120, G: 200, B: 60, A: 255}
	groundColor = color.RGBA{R: 222, G: 216, B: 149, A: 255}
	birdColor   = color.RGBA{R: 250, G: 210, B: 40, A: 255}
	wingColor   = color.RGBA{R: 240, G: 240, B: 220, A: 255}
	beakColor   = color.RGBA{R: 245, G: 120, B: 30, A: 255}
	panelColor  = color.RGBA{R: 20, G: 24, B: 32, A: 200}
	gameOverRed = color.RGBA{R: 230, G: 70, B: 60, A: 255}
	scoreOrange = color.RGBA{R: 252, G: 160, B: 68, A: 255}
)

const grassDepth = 12

var activateKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyArrowUp, ebiten.KeyW}

// Options configures a window run.
type Options struct {
	Seed     int64
	TickRate int
	Logger   *log.Logger
}

// Host adapts a flappy.Game to ebiten.Game.
type Host struct {
	game   *flappy.Game
	logger *log.Logger
	face   *text.GoTextFaceSource
	bird   *ebiten.Image
	frame  time.Duration
	width  int
	height int
}

// NewHost creates a window host for game. The game must already be started.
func NewHost(game *flappy.Game, tickRate int, logger *log.Logger) (*Host, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("gfx: cannot load font: %w", err)
	}
	if tickRate <= 0 {
		tickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	field := game.Scene().Field()
	return &Host{
		game:   game,
		logger: logger,
		face:   src,
		frame:  time.Second / time.Duration(tickRate),
		width:  int(field.Width),
		height: int(field.Height),
	}, nil
}

// Update reads this tick's input and advances the game by one frame.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		h.game.TogglePause()
	}

	if !h.game.Paused() {
		h.game.ActivateAll(h.activations())
	}
	h.game.Advance(h.frame)
	return nil
}

// activations collects this tick's triggers: keys, left clicks and taps.
func (h *Host) activations() []flappy.Activation {
	var out []flappy.Activation

	keys := activateKeys
	if h.game.Scene().State() == flappy.StateGameOver {
		keys = append(keys[:len(keys):len(keys)], ebiten.KeyR)
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			out = append(out, flappy.KeyPress())
			break
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		out = append(out, flappy.PointerPress(float64(x), float64(y)))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		out = append(out, flappy.PointerPress(float64(x), float64(y)))
	}
	return out
}

// Layout keeps one world unit per pixel and resizes the playfield with
// the window.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != h.width || outsideHeight != h.height) {
		h.width, h.height = outsideWidth, outsideHeight
		h.game.ResizeWorld(flappy.Playfield{Width: float64(outsideWidth), Height: float64(outsideHeight)})
		h.logger.Debug("window resized", "width", outsideWidth, "height", outsideHeight)
	}
	return h.width, h.height
}

// Draw renders the scene and HUD.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	scene := h.game.Scene()
	hud := h.game.HUD()

	for _, p := range scene.Pipes() {
		b := p.Box()
		vector.DrawFilledRect(screen, float32(b.Left()), float32(b.Top()), float32(b.W), float32(b.H), pipeColor, false)
		vector.DrawFilledRect(screen, float32(b.Left()), float32(b.Top()), 6, float32(b.H), pipeEdge, false)
	}

	top := float32(scene.GroundTop())
	w, hgt := float32(h.width), float32(h.height)
	vector.DrawFilledRect(screen, 0, top, w, hgt-top, groundColor, false)
	vector.DrawFilledRect(screen, 0, top, w, grassDepth, grassColor, false)

	if b := scene.Bird(); b.Visible {
		h.drawBird(screen, b, hud.Frame())
	}

	if hud.GreetingVisible {
		g := scene.GreetingBox()
		vector.DrawFilledRect(screen, float32(g.Left()), float32(g.Top()), float32(g.W), float32(g.H), panelColor, false)
		y := g.Top() + 40
		for i, line := range flappy.GreetingLines {
			size := 10.0
			if i == 0 {
				size = 14
			}
			h.drawText(screen, line, g.CX, y, size, color.White, 1)
			y += 30
		}
	}

	if hud.GameOverVisible {
		h.drawText(screen, "GAME OVER", float64(h.width)/2, float64(h.height)/2-40, 40, gameOverRed, 1)
	}
	if hud.ScoreText != "" {
		h.drawText(screen, hud.ScoreText, float64(h.width)/2, flappy.ScoreTextY, 24, scoreOrange, 1)
	}
	if hud.PromptVisible {
		h.drawScaledText(screen, flappy.RestartPrompt, float64(h.width)/2, flappy.PromptTextY, 16, color.White, hud.PromptAlpha(), hud.PromptScale())
	}
	if h.game.Paused() {
		h.drawText(screen, "PAUSED", float64(h.width)/2, float64(h.height)/2, 32, color.White, 1)
	}
}

// drawBird paints the bird into its own image and rotates that around
// the bird's center.
func (h *Host) drawBird(screen *ebiten.Image, b flappy.Bird, frame flappy.BirdFrame) {
	bw, bh := int(math.Ceil(b.W)), int(math.Ceil(b.H))
	if h.bird == nil || h.bird.Bounds().Dx() != bw || h.bird.Bounds().Dy() != bh {
		h.bird = ebiten.NewImage(bw, bh)
	}
	img := h.bird
	img.Clear()

	fw, fh := float32(bw), float32(bh)
	vector.DrawFilledRect(img, 0, fh*0.15, fw*0.8, fh*0.7, birdColor, false)
	vector.DrawFilledRect(img, fw*0.8, fh*0.45, fw*0.2, fh*0.2, beakColor, false)
	vector.DrawFilledCircle(img, fw*0.62, fh*0.35, fh*0.09, color.White, false)

	wingY := fh * 0.45
	switch frame {
	case flappy.FrameUp:
		wingY = fh * 0.2
	case flappy.FrameDown:
		wingY = fh * 0.65
	}
	vector.DrawFilledRect(img, fw*0.1, wingY, fw*0.35, fh*0.2, wingColor, false)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-b.W/2, -b.H/2)
	op.GeoM.Rotate(b.Angle * math.Pi / 180)
	op.GeoM.Translate(b.X, b.Y)
	screen.DrawImage(img, op)
}

func (h *Host) drawText(screen *ebiten.Image, s string, x, y, size float64, clr color.Color, alpha float64) {
	h.drawScaledText(screen, s, x, y, size, clr, alpha, 1)
}

func (h *Host) drawScaledText(screen *ebiten.Image, s string, x, y, size float64, clr color.Color, alpha, scale float64) {
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, &text.GoTextFace{Source: h.face, Size: size}, op)
}

// Run opens a resizable window and plays until it is closed.
func Run(game *flappy.Game, opts Options) error {
	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	game.Start(flappy.Playfield{Width: WindowWidth, Height: WindowHeight}, flappy.SessionSeed(opts.Seed), tickRate)

	host, err := NewHost(game, tickRate, opts.Logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(WindowWidth, WindowHeight)
	ebiten.SetWindowTitle(flappy.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tickRate)

	if err := ebiten.RunGame(host); err != nil {
		return fmt.Errorf("gfx: %w", err)
	}
	return nil
}
