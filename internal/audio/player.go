// Package audio plays the game's sound cues and soundtrack through the
// system audio device. Every sound is synthesized; there are no assets.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

const sampleRate = beep.SampleRate(44100)

// musicLevel is the soundtrack volume relative to the cues.
const musicLevel = 0.5

// Output is a flappy.Audio that holds a device.
type Output interface {
	flappy.Audio
	Close()
}

// device is the sound card behind a Player.
type device interface {
	Init(rate beep.SampleRate, s beep.Streamer) error
	Lock()
	Unlock()
	Close()
}

type speakerDevice struct{}

func (speakerDevice) Init(rate beep.SampleRate, s beep.Streamer) error {
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

func (speakerDevice) Lock()   { speaker.Lock() }
func (speakerDevice) Unlock() { speaker.Unlock() }

func (speakerDevice) Close() {
	speaker.Clear()
	speaker.Close()
}

// Player mixes cues and the soundtrack into one speaker stream.
// Calls never wait for playback; they only hold the speaker lock long
// enough to add or remove a stream.
type Player struct {
	mu     sync.Mutex
	cfg    config.AudioConfig
	dev    device
	mixer  *beep.Mixer
	music  *beep.Ctrl
	ready  bool
	logger *log.Logger
}

// Open returns the audio output for cfg. Disabled or muted audio is
// silent. A device that fails to open is an error only when cfg.Required
// is set; otherwise the failure is logged and the output is silent.
func Open(cfg config.AudioConfig, mute bool, logger *log.Logger) (Output, error) {
	return open(cfg, mute, speakerDevice{}, logger)
}

func open(cfg config.AudioConfig, mute bool, dev device, logger *log.Logger) (Output, error) {
	if !cfg.Enabled || mute {
		return Null{}, nil
	}

	p := newPlayer(cfg, dev, logger)
	if err := p.start(); err != nil {
		if cfg.Required {
			return nil, fmt.Errorf("audio: failed to open device: %w", err)
		}
		p.logger.Warn("audio unavailable, continuing without sound", "err", err)
		return Null{}, nil
	}
	return p, nil
}

func newPlayer(cfg config.AudioConfig, dev device, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		cfg:    cfg,
		dev:    dev,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

func (p *Player) start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := p.dev.Init(sampleRate, p.mixer); err != nil {
		return err
	}
	p.ready = true
	return nil
}

// Play starts a cue on top of whatever is already playing.
func (p *Player) Play(cue flappy.Cue) {
	s := cueStreamer(cue, sampleRate)
	if s == nil {
		p.logger.Debug("unknown cue", "cue", cue)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	p.add(newVolume(s, p.cfg.Volume))
}

// StartMusic starts the soundtrack from the top. It does nothing when the
// soundtrack is already playing or music is disabled.
func (p *Player) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || !p.cfg.Music || p.music != nil {
		return
	}
	p.music = &beep.Ctrl{Streamer: newVolume(newSoundtrack(sampleRate), p.cfg.Volume*musicLevel)}
	p.add(p.music)
}

// StopMusic stops the soundtrack.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music == nil {
		return
	}
	p.dev.Lock()
	// A Ctrl with no streamer drains, so the mixer drops it.
	p.music.Streamer = nil
	p.dev.Unlock()
	p.music = nil
}

// Close silences everything and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	p.dev.Lock()
	p.mixer.Clear()
	p.dev.Unlock()
	p.music = nil
	p.dev.Close()
	p.ready = false
}

// add must be called with p.mu held.
func (p *Player) add(s beep.Streamer) {
	p.dev.Lock()
	p.mixer.Add(s)
	p.dev.Unlock()
}

// Null discards every sound.
type Null struct{}

func (Null) Play(flappy.Cue) {}
func (Null) StartMusic()     {}
func (Null) StopMusic()      {}
func (Null) Close()          {}
