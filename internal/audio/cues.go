package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// cueStreamer synthesizes the sound for a cue. Unknown cues return nil.
func cueStreamer(c flappy.Cue, rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	switch c {
	case flappy.CueFlap:
		// Quick upward chirp
		return note(rate, waveTriangle, 420, 860, 90*ms, 40*ms)
	case flappy.CueHit:
		// Noise burst over a low thump
		return beep.Mix(
			newVolume(note(rate, waveNoise, 0, 0, 80*ms, 60*ms), 0.6),
			newVolume(note(rate, waveSquare, 140, 90, 120*ms, 80*ms), 0.4),
		)
	case flappy.CueDie:
		// Falling whistle
		return note(rate, waveSine, 720, 160, 480*ms, 120*ms)
	case flappy.CueScore:
		// Two-note chime (B5, E6)
		return beep.Seq(
			note(rate, waveSine, 988, 988, 80*ms, 20*ms),
			note(rate, waveSine, 1319, 1319, 170*ms, 120*ms),
		)
	case flappy.CueGameOver:
		// Descending C major arpeggio
		return beep.Seq(
			newVolume(note(rate, waveSquare, 523, 523, 150*ms, 40*ms), 0.5),
			newVolume(note(rate, waveSquare, 392, 392, 150*ms, 40*ms), 0.5),
			newVolume(note(rate, waveSquare, 330, 330, 150*ms, 40*ms), 0.5),
			newVolume(note(rate, waveSquare, 262, 262, 420*ms, 300*ms), 0.5),
		)
	default:
		return nil
	}
}

// soundtrackNotes is the looping melody, in Hz. Zero is a rest.
var soundtrackNotes = []float64{
	392, 0, 494, 587, 0, 494, 392, 0,
	440, 0, 523, 659, 0, 523, 440, 0,
	349, 0, 440, 523, 0, 440, 349, 0,
	392, 494, 587, 784, 587, 494, 392, 0,
}

// soundtrackBass is one root per bar of eight notes.
var soundtrackBass = []float64{98, 110, 87.3, 98}

// soundtrack is an endless chiptune loop. It never drains; stop it by
// removing it from the mixer.
type soundtrack struct {
	rate     beep.SampleRate
	position int
	step     int // Samples per note
}

func newSoundtrack(rate beep.SampleRate) *soundtrack {
	return &soundtrack{
		rate: rate,
		step: rate.N(180 * time.Millisecond),
	}
}

func (s *soundtrack) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (s.position / s.step) % len(soundtrackNotes)
		inNote := s.position % s.step
		t := float64(s.position) / float64(s.rate)

		var lead float64
		if freq := soundtrackNotes[idx]; freq > 0 {
			// Plucked decay within each note
			env := math.Exp(-float64(inNote) / float64(s.step) * 4)
			if math.Mod(freq*t, 1) < 0.5 {
				lead = 0.18 * env
			} else {
				lead = -0.18 * env
			}
		}
		bass := 0.12 * math.Sin(2*math.Pi*soundtrackBass[idx/8]*t)

		samples[i][0] = lead + bass
		samples[i][1] = lead + bass
		s.position++
	}
	return len(samples), true
}

func (s *soundtrack) Err() error { return nil }
