package flappy

// The resolvers are pure: they take the current values and return the new
// ones plus the effects to emit. The scene applies the results.

// Obstacle is what the bird collided with.
type Obstacle int

const (
	ObstacleGround Obstacle = iota
	ObstaclePipe
)

func (o Obstacle) String() string {
	if o == ObstaclePipe {
		return "pipe"
	}
	return "ground"
}

// ResolveOverlap scores a pipe segment once the bird is past it, while
// playing. A segment that is already passed is left alone, so repeated
// calls are no-ops.
func ResolveOverlap(state State, bird Bird, pipe Pipe, score Score) (Pipe, Score, []Effect) {
	if state != StatePlaying || pipe.Passed || bird.X <= pipe.X {
		return pipe, score, nil
	}
	pipe.Passed = true
	score = score.Add(1)
	return pipe, score, []Effect{setScoreText(score.String()), playCue(CueScore)}
}

// ResolveHit handles a collision with the ground or a pipe body.
// Nothing happens once the game is over.
func ResolveHit(state State, _ Obstacle) (State, []Effect) {
	if state == StateGameOver {
		return state, nil
	}
	return StateGameOver, []Effect{playCue(CueHit)}
}

// ResolveFall ends a running game when the bird has dropped below the
// bottom of the field without touching anything.
func ResolveFall(state State, bird Bird, field Playfield) (State, []Effect) {
	if state != StatePlaying || bird.Y <= field.Height {
		return state, nil
	}
	return StateGameOver, []Effect{playCue(CueDie)}
}
