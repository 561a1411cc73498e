package generator

import "github.com/isgasho/BAE"

// Sawtooth produces a rising sawtooth wave between -1 and 1.
type Sawtooth struct {
	freq       float64
	value      float64
	sampleRate float64
}

// NewSawtooth creates a sawtooth generator for the given frequency.
func NewSawtooth(freq, sampleRate float64) *Sawtooth {
	return &Sawtooth{freq: freq, sampleRate: sampleRate}
}

// Frequency returns the generator's frequency.
func (s *Sawtooth) Frequency() float64 { return s.freq }

// SetFrequency sets the generator's frequency.
func (s *Sawtooth) SetFrequency(f float64) { s.freq = f }

// Process produces the next sample.
func (s *Sawtooth) Process() bae.Sample {
	s.value += 2 * s.freq / s.sampleRate
	if s.value >= 1 {
		s.value -= 2
	}
	return bae.MonoSample(s.value)
}
