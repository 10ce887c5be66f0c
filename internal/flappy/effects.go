package flappy

// Cue names a one-shot sound.
type Cue string

const (
	CueFlap     Cue = "flap"
	CueHit      Cue = "hit"
	CueDie      Cue = "die"
	CueScore    Cue = "score"
	CueGameOver Cue = "gameover"
)

// Cues lists every cue in a stable order.
var Cues = []Cue{CueFlap, CueHit, CueDie, CueScore, CueGameOver}

// EffectKind identifies what an Effect asks the host to do.
type EffectKind int

const (
	EffectPlayCue EffectKind = iota + 1
	EffectStartMusic
	EffectStopMusic
	EffectResetHUD
	EffectShowGreeting
	EffectHideGreeting
	EffectShowGameOver
	EffectSetScoreText
	EffectShowRestartPrompt
)

// Effect is a one-way notification from the scene to its presenter or
// audio output. The scene never reads anything back.
type Effect struct {
	Kind EffectKind
	Cue  Cue    // EffectPlayCue
	Text string // EffectSetScoreText
}

func playCue(c Cue) Effect            { return Effect{Kind: EffectPlayCue, Cue: c} }
func setScoreText(text string) Effect { return Effect{Kind: EffectSetScoreText, Text: text} }

// Presenter receives presentation requests.
type Presenter interface {
	Reset()
	ShowGreeting()
	HideGreeting()
	ShowGameOver()
	SetScoreText(text string)
	ShowRestartPrompt()
}

// Audio receives sound requests. Implementations must not block.
type Audio interface {
	Play(cue Cue)
	StartMusic()
	StopMusic()
}

// Dispatch delivers effects in order. Either sink may be nil, in which
// case its effects are dropped.
func Dispatch(effects []Effect, p Presenter, a Audio) {
	for _, e := range effects {
		switch e.Kind {
		case EffectPlayCue:
			if a != nil {
				a.Play(e.Cue)
			}
		case EffectStartMusic:
			if a != nil {
				a.StartMusic()
			}
		case EffectStopMusic:
			if a != nil {
				a.StopMusic()
			}
		case EffectResetHUD:
			if p != nil {
				p.Reset()
			}
		case EffectShowGreeting:
			if p != nil {
				p.ShowGreeting()
			}
		case EffectHideGreeting:
			if p != nil {
				p.HideGreeting()
			}
		case EffectShowGameOver:
			if p != nil {
				p.ShowGameOver()
			}
		case EffectSetScoreText:
			if p != nil {
				p.SetScoreText(e.Text)
			}
		case EffectShowRestartPrompt:
			if p != nil {
				p.ShowRestartPrompt()
			}
		}
	}
}
