package flappy

import "testing"

func TestResolveOverlapScoresOnce(t *testing.T) {
	bird := Bird{X: 100, Y: 300}
	pipe := Pipe{X: 90, Y: 10}
	score := NewScore(8)

	pipe, score, effects := ResolveOverlap(StatePlaying, bird, pipe, score)
	if !pipe.Passed {
		t.Fatal("pipe should be marked passed")
	}
	if score.Units() != 1 {
		t.Fatalf("score units = %d, expected 1", score.Units())
	}
	if len(effects) != 2 || effects[0].Text != "0.125" || effects[1].Cue != CueScore {
		t.Errorf("unexpected effects %+v", effects)
	}

	for i := 0; i < 10; i++ {
		pipe, score, effects = ResolveOverlap(StatePlaying, bird, pipe, score)
		if effects != nil {
			t.Fatalf("call %d on passed pipe emitted %+v", i, effects)
		}
	}
	if score.Units() != 1 {
		t.Errorf("score changed on repeated calls: %d units", score.Units())
	}
}

func TestResolveOverlapBeforePipe(t *testing.T) {
	tests := []struct {
		name  string
		birdX float64
	}{
		{"behind pipe", 50},
		{"level with pipe", 90},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pipe, score, effects := ResolveOverlap(StatePlaying, Bird{X: tc.birdX}, Pipe{X: 90}, NewScore(8))
			if pipe.Passed || score.Units() != 0 || effects != nil {
				t.Errorf("expected no-op, got passed=%v units=%d effects=%v", pipe.Passed, score.Units(), effects)
			}
		})
	}
}

func TestResolveOverlapOnlyWhilePlaying(t *testing.T) {
	for _, st := range []State{StateWaiting, StateGameOver} {
		pipe, score, effects := ResolveOverlap(st, Bird{X: 100}, Pipe{X: 10}, NewScore(8))
		if pipe.Passed || score.Units() != 0 || effects != nil {
			t.Errorf("%v: overlap scored", st)
		}
	}
}

func TestResolveOverlapFullRow(t *testing.T) {
	bird := Bird{X: 100}
	score := NewScore(8)
	pipes := make([]Pipe, 8)
	for i := range pipes {
		pipes[i] = Pipe{X: 50, Y: float64(i) * 60}
	}

	for i := range pipes {
		pipes[i], score, _ = ResolveOverlap(StatePlaying, bird, pipes[i], score)
	}
	if score.Value() != 1 {
		t.Errorf("8 segments scored %v, expected exactly 1", score.Value())
	}
}

func TestResolveHit(t *testing.T) {
	tests := []struct {
		from     State
		to       State
		wantCues []Cue
	}{
		{StatePlaying, StateGameOver, []Cue{CueHit}},
		{StateWaiting, StateGameOver, []Cue{CueHit}},
		{StateGameOver, StateGameOver, nil},
	}

	for _, tc := range tests {
		t.Run(tc.from.String(), func(t *testing.T) {
			next, effects := ResolveHit(tc.from, ObstaclePipe)
			if next != tc.to {
				t.Errorf("state = %v, expected %v", next, tc.to)
			}
			if len(effects) != len(tc.wantCues) {
				t.Fatalf("effects = %+v, expected cues %v", effects, tc.wantCues)
			}
			for i, c := range tc.wantCues {
				if effects[i].Kind != EffectPlayCue || effects[i].Cue != c {
					t.Errorf("effect %d = %+v, expected cue %q", i, effects[i], c)
				}
			}
		})
	}
}

func TestResolveFall(t *testing.T) {
	field := Playfield{Width: 800, Height: 600}

	tests := []struct {
		name   string
		state  State
		y      float64
		want   State
		wantFx bool
	}{
		{"below bottom while playing", StatePlaying, 601, StateGameOver, true},
		{"at bottom edge", StatePlaying, 600, StatePlaying, false},
		{"already over", StateGameOver, 900, StateGameOver, false},
		{"waiting is inert", StateWaiting, 900, StateWaiting, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, effects := ResolveFall(tc.state, Bird{Y: tc.y}, field)
			if next != tc.want {
				t.Errorf("state = %v, expected %v", next, tc.want)
			}
			if tc.wantFx != (len(effects) == 1 && effects[0].Cue == CueDie) {
				t.Errorf("effects = %+v, expected die cue: %v", effects, tc.wantFx)
			}
		})
	}
}
