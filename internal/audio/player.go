package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// SampleRate is the output rate used for all cues.
const SampleRate = beep.SampleRate(44100)

// Player plays event cues.
type Player interface {
	Play(ev core.Event)
	Close()
}

// NopPlayer discards every cue.
type NopPlayer struct{}

func (NopPlayer) Play(core.Event) {}
func (NopPlayer) Close()          {}

// SpeakerPlayer plays cues on the default audio device.
type SpeakerPlayer struct {
	rate   beep.SampleRate
	volume float64
}

// NewSpeakerPlayer opens the audio device. volume is in [0, 1].
func NewSpeakerPlayer(volume float64) (*SpeakerPlayer, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	return &SpeakerPlayer{rate: SampleRate, volume: core.ClampF(volume, 0, 1)}, nil
}

// Play queues the cues for ev back to back. It never blocks on playback.
func (p *SpeakerPlayer) Play(ev core.Event) {
	if s := Sequence(CuesFor(ev), p.rate); s != nil {
		speaker.Play(withVolume(s, p.volume))
	}
}

// Close stops playback and releases the device.
func (p *SpeakerPlayer) Close() {
	speaker.Clear()
	speaker.Close()
}
