package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Cue is a sound played in response to a game event.
type Cue int

const (
	CueFlap Cue = iota
	CueScore
	CueCrash
)

func (c Cue) String() string {
	switch c {
	case CueFlap:
		return "flap"
	case CueScore:
		return "score"
	case CueCrash:
		return "crash"
	default:
		return fmt.Sprintf("Cue(%d)", int(c))
	}
}

// Cue lengths
const (
	flapLength  = 70 * time.Millisecond
	scoreNote   = 60 * time.Millisecond
	crashLength = 300 * time.Millisecond
)

// CuesFor returns the cues for a step's events in play order.
// A crash silences the flap and score of the same frame.
func CuesFor(ev core.Event) []Cue {
	if ev.Has(core.EventCrash) {
		return []Cue{CueCrash}
	}
	var out []Cue
	if ev.Has(core.EventFlap) || ev.Has(core.EventStart) || ev.Has(core.EventRestart) {
		out = append(out, CueFlap)
	}
	if ev.Has(core.EventScore) {
		out = append(out, CueScore)
	}
	return out
}

// Sequence chains the cues so each starts when the previous one ends.
// It returns nil when none of them is playable.
func Sequence(cues []Cue, rate beep.SampleRate) beep.Streamer {
	var streams []beep.Streamer
	for _, c := range cues {
		if s := NewCue(c, rate); s != nil {
			streams = append(streams, s)
		}
	}
	if len(streams) == 0 {
		return nil
	}
	return beep.Seq(streams...)
}

// NewCue synthesizes c at the given sample rate. Unknown cues return nil.
func NewCue(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueFlap:
		// Short upward chirp
		chirp := NewTone(420, 760, flapLength, WaveSquare, rate)
		return withVolume(NewFade(chirp, flapLength, 5*time.Millisecond, 40*time.Millisecond, rate), 0.25)

	case CueScore:
		// Two-note chime (E6 then A6)
		n1 := NewFade(NewTone(1318.5, 1318.5, scoreNote, WaveSine, rate), scoreNote, 2*time.Millisecond, 30*time.Millisecond, rate)
		n2 := NewFade(NewTone(1760, 1760, scoreNote, WaveSine, rate), scoreNote, 2*time.Millisecond, 45*time.Millisecond, rate)
		return withVolume(beep.Seq(n1, n2), 0.5)

	case CueCrash:
		// Noise burst over a falling thud
		noise := NewFade(NewTone(0, 0, crashLength, WaveNoise, rate), crashLength, 0, 250*time.Millisecond, rate)
		thud := NewFade(NewTone(180, 60, crashLength, WaveSine, rate), crashLength, 0, 200*time.Millisecond, rate)
		mixed := beep.Mix(withVolume(noise, 0.4), withVolume(thud, 0.8))
		return withVolume(beep.Take(rate.N(crashLength), mixed), 0.6)
	}
	return nil
}
