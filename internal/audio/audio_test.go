package audio

import (
	"reflect"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// drain streams s to the end and returns the sample count.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if smp[0] < -1.5 || smp[0] > 1.5 {
				t.Fatalf("sample out of range: %v", smp)
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never drained")
	return 0
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, w := range []Wave{WaveSine, WaveSquare, WaveNoise} {
		got := drain(t, NewTone(440, 880, 50*time.Millisecond, w, rate))
		if want := rate.N(50 * time.Millisecond); got != want {
			t.Errorf("wave %d: %d samples, expected %d", w, got, want)
		}
	}
}

func TestToneSquareValues(t *testing.T) {
	s := NewTone(220, 220, 20*time.Millisecond, WaveSquare, 44100)
	buf := make([][2]float64, 100)
	n, ok := s.Stream(buf)
	if !ok || n != 100 {
		t.Fatalf("Stream() = %d, %v", n, ok)
	}
	for i, smp := range buf[:n] {
		if smp[0] != 1 && smp[0] != -1 {
			t.Fatalf("sample %d = %v, expected +-1", i, smp[0])
		}
	}
}

func TestFadeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 20 * time.Millisecond
	s := NewFade(NewTone(0, 0, d, WaveSquare, rate), d, 5*time.Millisecond, 5*time.Millisecond, rate)

	buf := make([][2]float64, 1)
	s.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, expected 0 at the start of the attack", buf[0][0])
	}
}

func TestCueLengths(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		cue      Cue
		expected int
	}{
		{CueFlap, rate.N(flapLength)},
		{CueScore, 2 * rate.N(scoreNote)},
		{CueCrash, rate.N(crashLength)},
	}

	for _, tc := range tests {
		t.Run(tc.cue.String(), func(t *testing.T) {
			s := NewCue(tc.cue, rate)
			if s == nil {
				t.Fatal("NewCue returned nil")
			}
			if got := drain(t, s); got != tc.expected {
				t.Errorf("%d samples, expected %d", got, tc.expected)
			}
		})
	}

	if NewCue(Cue(42), rate) != nil {
		t.Error("unknown cue should return nil")
	}
}

func TestCuesFor(t *testing.T) {
	tests := []struct {
		name     string
		ev       core.Event
		expected []Cue
	}{
		{"none", 0, nil},
		{"flap", core.EventFlap, []Cue{CueFlap}},
		{"start", core.EventStart, []Cue{CueFlap}},
		{"flap and score", core.EventFlap | core.EventScore, []Cue{CueFlap, CueScore}},
		{"crash wins", core.EventFlap | core.EventScore | core.EventCrash, []Cue{CueCrash}},
		{"pause is silent", core.EventPause, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CuesFor(tc.ev); !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("CuesFor(%v) = %v, expected %v", tc.ev, got, tc.expected)
			}
		})
	}
}

func TestSequenceChainsCues(t *testing.T) {
	rate := beep.SampleRate(44100)

	got := drain(t, Sequence([]Cue{CueFlap, CueScore}, rate))
	if want := rate.N(flapLength) + 2*rate.N(scoreNote); got != want {
		t.Errorf("flap+score: %d samples, expected %d", got, want)
	}
	if s := Sequence(nil, rate); s != nil {
		t.Error("expected nil streamer for no cues")
	}
	if s := Sequence([]Cue{Cue(99)}, rate); s != nil {
		t.Error("expected nil streamer for unknown cues")
	}
}

func TestNopPlayer(t *testing.T) {
	var p Player = NopPlayer{}
	p.Play(core.EventCrash)
	p.Close()
}
