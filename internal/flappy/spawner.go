package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Spawner generates pipe rows. It owns its random source so a seed
// reproduces the same sequence of rows.
type Spawner struct {
	rng *rand.Rand
	cfg config.FlappyPipes
}

// NewSpawner creates a spawner seeded with seed.
func NewSpawner(seed int64, cfg config.FlappyPipes) *Spawner {
	return &Spawner{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Reseed restarts the random sequence.
func (s *Spawner) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// GenerateRow produces one row at the right edge of the field.
// The gap is drawn before the hole slot.
func (s *Spawner) GenerateRow(field Playfield, velocity float64) PipeRow {
	p := s.cfg
	gap := field.Height * (s.rng.Float64()*(p.MaxGapRatio-p.MinGapRatio) + p.MinGapRatio)
	hole := s.rng.Intn(p.HoleSlots)
	return BuildRow(p, field, hole, gap, velocity)
}

// BuildRow lays out a row for a known hole and gap. Slots in
// [hole, hole+HoleSpan) are skipped; slots below them move down by gap.
// Segments below the visible field are still created and scroll off with
// the rest of the row.
func BuildRow(p config.FlappyPipes, field Playfield, hole int, gap, velocity float64) PipeRow {
	row := PipeRow{
		Hole:  hole,
		Gap:   gap,
		Pipes: make([]Pipe, 0, p.SegmentCount),
	}
	holeEnd := hole + p.HoleSpan

	for i := 0; i < p.SegmentCount; i++ {
		if i >= hole && i < holeEnd {
			continue
		}
		y := float64(i)*p.SegmentStep + p.TopOffset
		if i >= holeEnd {
			y += gap
		}
		row.Pipes = append(row.Pipes, Pipe{
			X:    field.Width,
			Y:    y,
			VelX: velocity,
			W:    p.SegmentWidth,
			H:    p.SegmentHeight,
			Slot: i,
		})
	}

	half := p.SegmentHeight / 2
	row.HoleTop = float64(hole-1)*p.SegmentStep + p.TopOffset + half
	row.HoleBottom = float64(holeEnd)*p.SegmentStep + p.TopOffset + gap - half
	return row
}
