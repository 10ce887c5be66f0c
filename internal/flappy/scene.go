package flappy

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Activation is a player trigger. A key press activates anywhere; a
// pointer press carries the world position it landed on.
type Activation struct {
	Pointer bool
	X, Y    float64
}

// KeyPress returns a keyboard activation.
func KeyPress() Activation {
	return Activation{}
}

// PointerPress returns a pointer activation at world position (x, y).
func PointerPress(x, y float64) Activation {
	return Activation{Pointer: true, X: x, Y: y}
}

// Session holds everything that lives for one play-through. A restart
// replaces it wholesale, timers included.
type Session struct {
	State   State
	Bird    Bird
	Pipes   []Pipe
	Score   Score
	Rows    int           // Rows spawned so far
	Elapsed time.Duration // Time spent in StatePlaying

	clock   *Clock
	spawn   *Timer
	overlay *Timer
}

// stateHandler is the behavior of one scene state.
type stateHandler interface {
	enter(s *Scene) []Effect
	exit(s *Scene) []Effect
	activate(s *Scene, a Activation) []Effect
	update(s *Scene, dt time.Duration, events []Event) []Effect
}

// Scene is the game's state machine. The host calls Activate for player
// input and Update once per frame; both return the effects to dispatch.
type Scene struct {
	cfg        config.FlappyConfig
	world      World
	spawner    *Spawner
	difficulty *config.DifficultyManager
	field      Playfield
	session    *Session
	states     map[State]stateHandler
	logger     *log.Logger
}

// NewScene creates a scene in StateWaiting. Call Reset to receive the
// effects of entering it.
func NewScene(cfg config.FlappyConfig, field Playfield, seed int64, logger *log.Logger) *Scene {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Scene{
		cfg:        cfg,
		world:      NewWorld(cfg),
		spawner:    NewSpawner(seed, cfg.Pipes),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		field:      field,
		logger:     logger,
		states: map[State]stateHandler{
			StateWaiting:  waitingState{},
			StatePlaying:  playingState{},
			StateGameOver: gameOverState{},
		},
	}
	s.session = s.newSession()
	return s
}

func (s *Scene) newSession() *Session {
	x, y := s.world.BirdSpawn(s.field)
	clock := NewClock()
	return &Session{
		State: StateWaiting,
		Bird: Bird{
			X: x,
			Y: y,
			W: s.cfg.Bird.Width,
			H: s.cfg.Bird.Height,
		},
		Score: NewScore(s.cfg.Scoring.UnitsPerPoint),
		clock: clock,
		spawn: clock.AddEvent(s.cfg.Timing.SpawnInterval, EventSpawnRow, true, true),
	}
}

func (s *Scene) handler() stateHandler {
	return s.states[s.session.State]
}

// Reset discards the current session and starts a fresh one in
// StateWaiting. Pending timers of the old session never fire.
func (s *Scene) Reset() []Effect {
	effects := s.handler().exit(s)
	s.session.clock.Clear()

	s.session = s.newSession()
	effects = append(effects, Effect{Kind: EffectResetHUD})
	effects = append(effects, s.handler().enter(s)...)
	s.logger.Debug("session reset", "width", s.field.Width, "height", s.field.Height)
	return effects
}

// Activate applies a player trigger in the current state.
func (s *Scene) Activate(a Activation) []Effect {
	return s.handler().activate(s, a)
}

// Update advances timers and physics by dt.
func (s *Scene) Update(dt time.Duration) []Effect {
	if dt <= 0 {
		return nil
	}
	events := s.session.clock.Advance(dt)
	return s.handler().update(s, dt, events)
}

// Resize changes the playfield. Layout derived from the size is
// recomputed on use; a waiting bird is moved to the new spawn point.
func (s *Scene) Resize(field Playfield) {
	if !field.Valid() {
		return
	}
	s.field = field
	if s.session.State == StateWaiting {
		s.session.Bird.X, s.session.Bird.Y = s.world.BirdSpawn(field)
	}
}

// transition moves to another state, running exit and enter handlers.
func (s *Scene) transition(to State) []Effect {
	from := s.session.State
	if from == to {
		return nil
	}
	effects := s.handler().exit(s)
	s.session.State = to
	s.logger.Debug("state transition", "from", from, "to", to, "score", s.session.Score.String())
	return append(effects, s.handler().enter(s)...)
}

// apply emits resolver effects and follows the state they produced.
func (s *Scene) apply(next State, effects []Effect) []Effect {
	return append(effects, s.transition(next)...)
}

// collision reports what, if anything, the bird is touching.
func (s *Scene) collision() (Obstacle, bool) {
	b := s.session.Bird
	if s.world.HitsGround(b, s.field) {
		return ObstacleGround, true
	}
	if s.world.HitPipe(b, s.session.Pipes) >= 0 {
		return ObstaclePipe, true
	}
	return 0, false
}

func (s *Scene) spawnRow() {
	sess := s.session
	speed := s.difficulty.Speed(s.cfg.Physics.PipeSpeed, sess.Score.Value(), sess.Elapsed.Seconds())
	row := s.spawner.GenerateRow(s.field, -speed)
	sess.Pipes = append(sess.Pipes, row.Pipes...)
	sess.Rows++
	s.logger.Debug("spawned row", "row", sess.Rows, "hole", row.Hole, "gap", row.Gap, "pipes", len(row.Pipes))
}

// State returns the current state.
func (s *Scene) State() State { return s.session.State }

// Score returns the current score.
func (s *Scene) Score() Score { return s.session.Score }

// Bird returns the bird.
func (s *Scene) Bird() Bird { return s.session.Bird }

// Pipes returns the live pipe segments. The slice must not be modified.
func (s *Scene) Pipes() []Pipe { return s.session.Pipes }

// Session returns the current session.
func (s *Scene) Session() *Session { return s.session }

// Field returns the playfield size.
func (s *Scene) Field() Playfield { return s.field }

// GroundTop returns the y of the ground surface.
func (s *Scene) GroundTop() float64 { return s.world.GroundTop(s.field) }

// GreetingBox returns the clickable greeting panel, centered on the field.
func (s *Scene) GreetingBox() core.Box {
	return core.BoxAt(s.field.Width/2, s.field.Height/2, s.cfg.Greeting.Width, s.cfg.Greeting.Height)
}

// --- Waiting ---

type waitingState struct{}

func (waitingState) enter(s *Scene) []Effect {
	b := &s.session.Bird
	b.Alive, b.Visible, b.Gravity = false, false, false
	b.VelY, b.Angle = 0, 0
	s.session.spawn.Pause()
	return []Effect{
		{Kind: EffectShowGreeting},
		setScoreText(""),
		{Kind: EffectStartMusic},
	}
}

func (waitingState) exit(s *Scene) []Effect {
	return []Effect{{Kind: EffectHideGreeting}}
}

// A key always starts the game; a pointer press has to land on the
// greeting. The starting press does not flap.
func (waitingState) activate(s *Scene, a Activation) []Effect {
	if a.Pointer && !s.GreetingBox().ContainsPoint(a.X, a.Y) {
		return nil
	}
	return s.transition(StatePlaying)
}

func (waitingState) update(*Scene, time.Duration, []Event) []Effect {
	return nil
}

// --- Playing ---

type playingState struct{}

func (playingState) enter(s *Scene) []Effect {
	b := &s.session.Bird
	b.Alive, b.Visible, b.Gravity = true, true, true
	s.session.spawn.Resume()
	return nil
}

func (playingState) exit(s *Scene) []Effect {
	s.session.spawn.Pause()
	return nil
}

func (playingState) activate(s *Scene, _ Activation) []Effect {
	b := &s.session.Bird
	if !b.Alive {
		return nil
	}
	b.VelY = s.cfg.Physics.FlapVelocity
	return []Effect{playCue(CueFlap)}
}

// update runs one frame in a fixed order: timers, physics, collisions,
// the fall check, then pass scoring.
func (playingState) update(s *Scene, dt time.Duration, events []Event) []Effect {
	sess := s.session
	sess.Elapsed += dt

	for _, e := range events {
		if e == EventSpawnRow {
			s.spawnRow()
		}
	}

	sec := dt.Seconds()
	sess.Bird = s.world.StepBird(sess.Bird, sec)
	sess.Pipes = s.world.StepPipes(sess.Pipes, sec)

	if obstacle, hit := s.collision(); hit {
		s.logger.Debug("collision", "obstacle", obstacle, "y", sess.Bird.Y)
		return s.apply(ResolveHit(sess.State, obstacle))
	}
	if next, effects := ResolveFall(sess.State, sess.Bird, s.field); next != sess.State {
		return s.apply(next, effects)
	}

	var effects []Effect
	for i := range sess.Pipes {
		var eff []Effect
		sess.Pipes[i], sess.Score, eff = ResolveOverlap(sess.State, sess.Bird, sess.Pipes[i], sess.Score)
		effects = append(effects, eff...)
	}
	return effects
}

// --- Game over ---

type gameOverState struct{}

func (gameOverState) enter(s *Scene) []Effect {
	sess := s.session
	b := &sess.Bird
	b.Alive, b.Visible, b.Gravity = false, false, false
	b.VelY = 0
	sess.Pipes = nil
	sess.spawn.Remove()
	sess.overlay = sess.clock.DelayedCall(s.cfg.Timing.GameOverDelay, EventRevealScore)
	s.logger.Debug("game over", "score", sess.Score.String(), "rows", sess.Rows, "elapsed", sess.Elapsed)
	return []Effect{
		{Kind: EffectShowGameOver},
		{Kind: EffectStopMusic},
		playCue(CueGameOver),
	}
}

func (gameOverState) exit(s *Scene) []Effect {
	s.session.overlay.Remove()
	return nil
}

func (gameOverState) activate(s *Scene, _ Activation) []Effect {
	return s.Reset()
}

func (gameOverState) update(s *Scene, _ time.Duration, events []Event) []Effect {
	var effects []Effect
	for _, e := range events {
		if e == EventRevealScore {
			effects = append(effects,
				setScoreText("Score: "+s.session.Score.String()),
				Effect{Kind: EffectShowRestartPrompt},
			)
		}
	}
	return effects
}
