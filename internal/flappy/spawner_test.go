package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestBuildRowScenario(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Pipes
	field := Playfield{Width: 800, Height: 600}

	row := BuildRow(cfg, field, 2, 0.5*600, -200)

	wantSlots := []int{0, 1, 4, 5, 6, 7, 8, 9}
	wantY := []float64{10, 70, 550, 610, 670, 730, 790, 850}

	if len(row.Pipes) != len(wantSlots) {
		t.Fatalf("row has %d pipes, expected %d", len(row.Pipes), len(wantSlots))
	}
	for i, p := range row.Pipes {
		if p.Slot != wantSlots[i] {
			t.Errorf("pipe %d: slot = %d, expected %d", i, p.Slot, wantSlots[i])
		}
		if p.Y != wantY[i] {
			t.Errorf("pipe %d: y = %v, expected %v", i, p.Y, wantY[i])
		}
		if p.X != 800 {
			t.Errorf("pipe %d: x = %v, expected spawn at right edge 800", i, p.X)
		}
		if p.VelX != -200 {
			t.Errorf("pipe %d: velocity = %v, expected -200", i, p.VelX)
		}
		if p.Passed {
			t.Errorf("pipe %d should not start passed", i)
		}
	}
}

func TestGenerateRowBounds(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Pipes
	field := Playfield{Width: 800, Height: 600}

	holes := make(map[int]bool)
	for seed := int64(1); seed <= 300; seed++ {
		row := NewSpawner(seed, cfg).GenerateRow(field, -200)

		if row.Hole < 0 || row.Hole > 4 {
			t.Fatalf("seed %d: hole slot %d out of [0, 4]", seed, row.Hole)
		}
		holes[row.Hole] = true

		if row.Gap < 0.4*field.Height || row.Gap > 0.7*field.Height {
			t.Fatalf("seed %d: gap %v out of [240, 420]", seed, row.Gap)
		}
		if len(row.Pipes) != 8 {
			t.Fatalf("seed %d: %d pipes, expected 8", seed, len(row.Pipes))
		}

		for _, p := range row.Pipes {
			if p.Slot == row.Hole || p.Slot == row.Hole+1 {
				t.Fatalf("seed %d: pipe generated in hole slot %d", seed, p.Slot)
			}
			b := p.Box()
			if b.Bottom() > row.HoleTop && b.Top() < row.HoleBottom {
				t.Fatalf("seed %d: pipe at y=%v intrudes on hole band [%v, %v)",
					seed, p.Y, row.HoleTop, row.HoleBottom)
			}
		}
	}

	if len(holes) != 5 {
		t.Errorf("expected all 5 hole slots over 300 rows, saw %d", len(holes))
	}
}

func TestGenerateRowDeterministic(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Pipes
	field := Playfield{Width: 800, Height: 600}

	a := NewSpawner(42, cfg)
	b := NewSpawner(42, cfg)
	for i := 0; i < 20; i++ {
		ra := a.GenerateRow(field, -200)
		rb := b.GenerateRow(field, -200)
		if ra.Hole != rb.Hole || ra.Gap != rb.Gap {
			t.Fatalf("row %d differs: (%d, %v) vs (%d, %v)", i, ra.Hole, ra.Gap, rb.Hole, rb.Gap)
		}
	}

	a.Reseed(42)
	first := NewSpawner(42, cfg).GenerateRow(field, -200)
	if again := a.GenerateRow(field, -200); again.Gap != first.Gap {
		t.Error("Reseed should restart the sequence")
	}
}

func TestGenerateRowScalesWithHeight(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Pipes
	field := Playfield{Width: 1200, Height: 1000}

	for seed := int64(1); seed <= 50; seed++ {
		row := NewSpawner(seed, cfg).GenerateRow(field, -200)
		if row.Gap < 400 || row.Gap > 700 {
			t.Fatalf("seed %d: gap %v not within [0.4, 0.7] of 1000", seed, row.Gap)
		}
		if row.Pipes[0].X != 1200 {
			t.Fatalf("seed %d: spawn x = %v, expected 1200", seed, row.Pipes[0].X)
		}
	}
}
