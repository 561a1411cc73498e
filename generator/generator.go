// Package generator provides the stock signal sources: the basic
// periodic waveforms, white noise and wav-file playback. Every generator
// produces exactly one sample per tick.
package generator

import (
	"math"

	"github.com/isgasho/BAE"
)

// Sine produces a sine wave at a fixed frequency.
type Sine struct {
	freq       float64
	phase      float64
	sampleRate float64
}

// NewSine creates a sine generator for the given frequency.
func NewSine(freq, sampleRate float64) *Sine {
	return &Sine{freq: freq, sampleRate: sampleRate}
}

// Frequency returns the generator's frequency.
func (s *Sine) Frequency() float64 { return s.freq }

// SetFrequency sets the generator's frequency. The phase is preserved, so
// frequency sweeps stay continuous.
func (s *Sine) SetFrequency(f float64) { s.freq = f }

// Process produces the next sample.
func (s *Sine) Process() bae.Sample {
	y := math.Sin(2 * math.Pi * s.phase)
	s.phase += s.freq / s.sampleRate
	if s.phase >= 1 {
		s.phase -= 1
	}
	return bae.MonoSample(y)
}
