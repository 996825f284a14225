package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/tomz197/arena/internal/match"
)

// Cue is a short sound played for a match event.
type Cue int

const (
	CueFire Cue = iota
	CueHit
	CueReload
	CueSwitch
	CueVictory
	CueDraw
)

func (c Cue) String() string {
	switch c {
	case CueFire:
		return "fire"
	case CueHit:
		return "hit"
	case CueReload:
		return "reload"
	case CueSwitch:
		return "switch"
	case CueVictory:
		return "victory"
	case CueDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// CueFor picks the cue for a match event.
func CueFor(e match.Event) (Cue, bool) {
	switch e.Kind {
	case match.EventFired:
		return CueFire, true
	case match.EventHit:
		return CueHit, true
	case match.EventReloadStarted:
		return CueReload, true
	case match.EventWeaponSwitched:
		return CueSwitch, true
	case match.EventConcluded:
		if e.Outcome.Draw {
			return CueDraw, true
		}
		return CueVictory, true
	default:
		return 0, false
	}
}

// note is a shaped tone with a short attack.
func note(wave Wave, freq, freqEnd float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewTone(wave, freq, freqEnd, d, rate), d, 5*time.Millisecond, d/2, rate)
}

// NewCue synthesises a cue at the given volume (0 to 1).
func NewCue(c Cue, vol float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueFire:
		s = note(WaveSquare, 880, 440, 60*time.Millisecond, rate)
	case CueHit:
		s = beep.Mix(
			withVolume(note(WaveNoise, 0, 0, 90*time.Millisecond, rate), 0.5),
			withVolume(note(WaveSine, 160, 80, 90*time.Millisecond, rate), 0.5),
		)
	case CueReload:
		s = beep.Seq(
			note(WaveSaw, 220, 220, 40*time.Millisecond, rate),
			note(WaveSaw, 330, 330, 40*time.Millisecond, rate),
		)
	case CueSwitch:
		s = note(WaveSine, 660, 990, 50*time.Millisecond, rate)
	case CueVictory:
		s = beep.Seq(
			note(WaveSquare, 523.25, 523.25, 120*time.Millisecond, rate),
			note(WaveSquare, 659.25, 659.25, 120*time.Millisecond, rate),
			note(WaveSquare, 783.99, 783.99, 240*time.Millisecond, rate),
		)
	case CueDraw:
		s = beep.Seq(
			note(WaveSine, 392, 392, 150*time.Millisecond, rate),
			note(WaveSine, 261.63, 261.63, 300*time.Millisecond, rate),
		)
	default:
		return nil
	}
	return withVolume(s, vol)
}
