// Package audio plays short synthesized cues for game events using beep.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// tone is a fixed-length oscillator. freq may glide linearly to freqEnd.
type tone struct {
	freq    float64
	freqEnd float64
	phase   float64
	pos     int
	length  int
	wave    Wave
	rate    beep.SampleRate
	noise   *rand.Rand
}

// NewTone returns a streamer that plays one wave for d, gliding from freq to freqEnd.
func NewTone(freq, freqEnd float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:    freq,
		freqEnd: freqEnd,
		length:  rate.N(d),
		wave:    wave,
		rate:    rate,
		noise:   rand.New(rand.NewSource(1)),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveNoise:
			v = t.noise.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		f := t.freq + (t.freqEnd-t.freq)*float64(t.pos)/float64(t.length)
		t.phase += f / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// fade ramps the start and end of a streamer to avoid clicks.
type fade struct {
	s       beep.Streamer
	pos     int
	attack  int
	release int
	length  int
}

// NewFade shapes s, which lasts d, with a linear attack and release.
func NewFade(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{
		s:       s,
		attack:  rate.N(attack),
		release: rate.N(release),
		length:  rate.N(d),
	}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.attack > 0 && f.pos < f.attack {
			gain = float64(f.pos) / float64(f.attack)
		}
		if left := f.length - f.pos; f.release > 0 && left < f.release {
			gain = math.Max(0, float64(left)/float64(f.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

// withVolume scales s linearly by vol in [0, 1]. Zero is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
