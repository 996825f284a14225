// Package audio synthesises short sound cues for match events and plays
// them through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/arena/internal/match"
)

const (
	sampleRate    = beep.SampleRate(44100)
	defaultVolume = 0.4
)

// Player turns match events into cues. It is safe to use as a
// match.Listener from the tick goroutine.
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	play   func(beep.Streamer)
	muted  [CueDraw + 1]bool
}

// NewPlayer initialises the speaker and returns a player using it.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return newPlayer(sampleRate, defaultVolume, func(s beep.Streamer) { speaker.Play(s) }), nil
}

func newPlayer(rate beep.SampleRate, volume float64, play func(beep.Streamer)) *Player {
	return &Player{rate: rate, volume: volume, play: play}
}

// Mute silences or restores one cue.
func (p *Player) Mute(c Cue, muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c >= 0 && int(c) < len(p.muted) {
		p.muted[c] = muted
	}
}

// Play starts a cue without waiting for it to finish.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c < 0 || int(c) >= len(p.muted) || p.muted[c] {
		return
	}
	if s := NewCue(c, p.volume, p.rate); s != nil {
		p.play(s)
	}
}

// OnEvent implements match.Listener.
func (p *Player) OnEvent(e match.Event) {
	if c, ok := CueFor(e); ok {
		p.Play(c)
	}
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	speaker.Clear()
	speaker.Close()
}

var _ match.Listener = (*Player)(nil)
