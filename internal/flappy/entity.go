// Package flappy implements a Flappy Bird-style game.
// A bird falls under gravity, the player flaps to climb, and rows of stacked
// pipe segments scroll in from the right with a randomly placed hole.
//
// The package is host-agnostic: the scene consumes activations and frame
// time, and reports everything it wants shown or heard as Effects.
package flappy

import (
	"strconv"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// State is the scene's state machine state.
type State int

const (
	StateWaiting  State = iota // Greeting shown, bird inert
	StatePlaying               // Gravity on, pipes spawning
	StateGameOver              // Terminal until the next activation
)

// String returns the state name used in logs and host summaries.
func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Bird is the player sprite. Positions are center anchored, in world units.
type Bird struct {
	X, Y    float64 // Center position; X is fixed after spawn
	VelY    float64 // Vertical velocity, positive is down
	Angle   float64 // Visual rotation in degrees
	W, H    float64 // Hitbox size
	Alive   bool    // Receives flaps and collides
	Visible bool
	Gravity bool // Gravity applies to the body
}

// Box returns the bird's hitbox.
func (b Bird) Box() core.Box {
	return core.BoxAt(b.X, b.Y, b.W, b.H)
}

// Pipe is one stacked segment of a pipe row.
type Pipe struct {
	X, Y   float64 // Center position
	VelX   float64 // Constant horizontal velocity, negative is left
	W, H   float64
	Slot   int  // Slot index within its row
	Passed bool // Bird has moved beyond this segment; counted once
}

// Box returns the segment's hitbox.
func (p Pipe) Box() core.Box {
	return core.BoxAt(p.X, p.Y, p.W, p.H)
}

// PipeRow is the output of one spawn: the hole placement and the segments
// built around it.
type PipeRow struct {
	Hole  int     // First skipped slot
	Gap   float64 // Extra downward offset applied below the hole
	Pipes []Pipe

	// HoleTop and HoleBottom bound the empty band left by the hole.
	HoleTop, HoleBottom float64
}

// Score is an exact fractional counter. It counts units, where
// perPoint units make one point.
type Score struct {
	units    int
	perPoint int
}

// NewScore returns a zero score with the given unit size.
func NewScore(unitsPerPoint int) Score {
	if unitsPerPoint <= 0 {
		unitsPerPoint = 1
	}
	return Score{perPoint: unitsPerPoint}
}

// Add returns the score increased by n units. Negative n is ignored.
func (s Score) Add(n int) Score {
	if n > 0 {
		s.units += n
	}
	return s
}

// Units returns the raw unit count.
func (s Score) Units() int { return s.units }

// PerPoint returns how many units make a point.
func (s Score) PerPoint() int { return s.perPoint }

// Value returns the score in points.
func (s Score) Value() float64 {
	if s.perPoint == 0 {
		return 0
	}
	return float64(s.units) / float64(s.perPoint)
}

// String formats the score in points with no trailing zeros ("0.125", "3").
func (s Score) String() string {
	return strconv.FormatFloat(s.Value(), 'f', -1, 64)
}

// Playfield is the world size in world units. Hosts supply it and may
// change it at any time.
type Playfield struct {
	Width, Height float64
}

// Valid reports whether the playfield has a usable size.
func (f Playfield) Valid() bool {
	return f.Width > 0 && f.Height > 0
}
