package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// World applies arcade physics: gravity and velocity integration, a solid
// ceiling, out-of-bounds culling and AABB overlap tests.
type World struct {
	physics config.FlappyPhysics
	bird    config.FlappyBird
	ground  config.FlappyGround
}

// NewWorld creates a world from the game configuration.
func NewWorld(cfg config.FlappyConfig) World {
	return World{
		physics: cfg.Physics,
		bird:    cfg.Bird,
		ground:  cfg.Ground,
	}
}

// StepBird advances the bird by dt seconds.
func (w World) StepBird(b Bird, dt float64) Bird {
	if b.Gravity {
		b.VelY += w.physics.Gravity * dt
		if w.physics.MaxFallSpeed > 0 && b.VelY > w.physics.MaxFallSpeed {
			b.VelY = w.physics.MaxFallSpeed
		}
	}
	b.Y += b.VelY * dt

	// The top of the field is solid.
	if top := b.Y - b.H/2; top < 0 {
		b.Y = b.H / 2
		if b.VelY < 0 {
			b.VelY = 0
		}
	}

	switch {
	case b.VelY < 0:
		b.Angle = w.bird.RiseAngle
	case b.VelY > 0 && b.Angle < w.bird.MaxAngle:
		b.Angle = math.Min(b.Angle+w.bird.FallRotation*dt, w.bird.MaxAngle)
	}
	return b
}

// StepPipes moves every pipe by its velocity and drops the ones that have
// fully left the field on the left. The slice is filtered in place.
func (w World) StepPipes(pipes []Pipe, dt float64) []Pipe {
	kept := pipes[:0]
	for _, p := range pipes {
		p.X += p.VelX * dt
		if p.X+p.W/2 < 0 {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// GroundTop returns the y of the ground surface.
func (w World) GroundTop(field Playfield) float64 {
	return field.Height - w.ground.Depth
}

// GroundBox returns the ground strip's hitbox.
func (w World) GroundBox(field Playfield) core.Box {
	top := w.GroundTop(field)
	return core.BoxAt(field.Width/2, top+w.ground.Depth/2, field.Width, w.ground.Depth)
}

// HitsGround reports whether the bird touches the ground.
func (w World) HitsGround(b Bird, field Playfield) bool {
	return b.Box().Overlaps(w.GroundBox(field))
}

// HitPipe returns the index of the first pipe the bird collides with,
// or -1.
func (w World) HitPipe(b Bird, pipes []Pipe) int {
	box := b.Box()
	for i, p := range pipes {
		if box.Overlaps(p.Box()) {
			return i
		}
	}
	return -1
}

// BirdSpawn returns the bird's starting position for the field.
func (w World) BirdSpawn(field Playfield) (x, y float64) {
	return field.Width * w.bird.XRatio, field.Height / 2
}
