package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	PipeChar     = '█'
	GrassChar    = '▀'
	GroundChar   = '░'
	BirdBodyChar = '█'
)

// World y of the HUD labels, shared by every host.
const (
	ScoreTextY  = 50
	PromptTextY = 100
)

// RestartPrompt is the text shown once the final score is revealed.
const RestartPrompt = "Press to restart"

// GreetingLines is the content of the greeting panel.
var GreetingLines = []string{
	"FLAPPY BIRD",
	"",
	"Get ready!",
	"",
	"SPACE or click",
	"to start",
}

// Render draws the current game state to a screen measured in cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.scene

	for _, p := range s.Pipes() {
		g.drawPipe(dst, p)
	}
	g.drawGround(dst)

	if b := s.Bird(); b.Visible {
		g.drawBird(dst, b)
	}

	hud := g.hud
	if hud.GreetingVisible {
		g.drawGreeting(dst)
	}
	if hud.GameOverVisible {
		g.drawPanel(dst, core.ColorRed, "GAME OVER")
	}
	if hud.ScoreText != "" {
		dst.DrawTextCentered(g.row(ScoreTextY), hud.ScoreText, core.ColorOrange)
	}
	if hud.PromptVisible {
		g.drawPrompt(dst)
	}
	if g.paused {
		g.drawPanel(dst, core.ColorCyan, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawPipe(dst *core.Screen, p Pipe) {
	r := g.cellRect(p.Box())
	dst.DrawRect(r, PipeChar, core.ColorGreen)
	// Highlight the left edge like the sprite's lit side
	for y := r.Y; y < r.Bottom(); y++ {
		dst.SetColored(r.X, y, PipeChar, core.ColorBrightGreen)
	}
}

func (g *Game) drawGround(dst *core.Screen) {
	top := g.row(g.scene.GroundTop())
	dst.DrawHLine(0, top, dst.Width(), GrassChar, core.ColorBrightGreen)
	for y := top + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundChar, core.ColorYellow)
	}
}

// drawBird fills the hitbox, with the wing on the left column following
// the flap animation and the beak on the right column following the angle.
func (g *Game) drawBird(dst *core.Screen, b Bird) {
	r := g.cellRect(b.Box())
	dst.DrawRect(r, BirdBodyChar, core.ColorBrightYellow)

	mid := r.Y + r.H/2
	dst.SetColored(r.X, mid, wingRune(g.hud.Frame()), core.ColorBrightWhite)
	dst.SetColored(r.Right()-1, mid, beakRune(b.Angle), core.ColorOrange)
}

func wingRune(f BirdFrame) rune {
	switch f {
	case FrameUp:
		return '▀'
	case FrameDown:
		return '▄'
	default:
		return '■'
	}
}

func beakRune(angle float64) rune {
	switch {
	case angle < -10:
		return '↗'
	case angle < 30:
		return '→'
	case angle < 70:
		return '↘'
	default:
		return '↓'
	}
}

func (g *Game) drawGreeting(dst *core.Screen) {
	r := g.cellRect(g.scene.GreetingBox())
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorBrightWhite)

	y := r.Y + (r.H-len(GreetingLines))/2
	for i, line := range GreetingLines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightYellow
		}
		x := r.X + (r.W-len([]rune(line)))/2
		dst.DrawTextColored(x, y+i, line, c)
	}
}

// drawPanel draws a boxed message in the middle of the screen.
func (g *Game) drawPanel(dst *core.Screen, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	w, h := width+4, len(lines)+2
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, c)
	for i, l := range lines {
		dst.DrawTextColored(r.X+(w-len([]rune(l)))/2, r.Y+1+i, l, c)
	}
}

// drawPrompt maps the pulse onto the terminal: low alpha dims the text
// and a large scale adds markers around it.
func (g *Game) drawPrompt(dst *core.Screen) {
	text := RestartPrompt
	if g.hud.PromptScale() > 1.05 {
		text = "» " + text + " «"
	}
	c := core.ColorOrange
	if g.hud.PromptAlpha() < 0.75 {
		c = core.ColorGray
	}
	dst.DrawTextCentered(g.row(PromptTextY), text, c)
}

func (g *Game) row(y float64) int {
	return int(math.Floor(y / g.cfg.Render.CellHeight))
}

// cellRect converts a world box to the cells it covers.
func (g *Game) cellRect(b core.Box) core.Rect {
	cw, ch := g.cfg.Render.CellWidth, g.cfg.Render.CellHeight
	x0 := int(math.Floor(b.Left() / cw))
	y0 := int(math.Floor(b.Top() / ch))
	x1 := int(math.Ceil(b.Right() / cw))
	y1 := int(math.Ceil(b.Bottom() / ch))
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
