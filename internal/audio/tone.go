// Package audio synthesizes the game's sound cues with beep.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// ParseWave maps a config wave name to a WaveType. Unknown names are sine.
func ParseWave(name string) WaveType {
	if name == "square" {
		return WaveSquare
	}
	return WaveSine
}

// oscillator generates a fixed-length tone
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a tone of freq Hz lasting duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fade ramps the first and last samples of a stream so short tones do not click.
type fade struct {
	streamer beep.Streamer
	position int
	total    int
	ramp     int
}

// NewFade wraps s, which must produce exactly duration worth of samples.
func NewFade(s beep.Streamer, duration, ramp time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &fade{
		streamer: s,
		total:    total,
		ramp:     min(rate.N(ramp), total/2),
	}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := range n {
		vol := 1.0
		if f.ramp > 0 {
			if f.position < f.ramp {
				vol = float64(f.position) / float64(f.ramp)
			}
			if left := f.total - f.position; left < f.ramp {
				vol = math.Max(0, float64(left)/float64(f.ramp))
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// newVolume scales a stream linearly; beep's Volume effect works in log steps.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
