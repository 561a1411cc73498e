package generator

import "github.com/isgasho/BAE"

// Square produces a square wave with a configurable duty cycle.
type Square struct {
	freq       float64
	duty       float64
	phase      float64
	sampleRate float64
}

// NewSquare creates a square generator for the given frequency with a 50%
// duty cycle.
func NewSquare(freq, sampleRate float64) *Square {
	return &Square{freq: freq, duty: 0.5, sampleRate: sampleRate}
}

// Frequency returns the generator's frequency.
func (s *Square) Frequency() float64 { return s.freq }

// SetFrequency sets the generator's frequency.
func (s *Square) SetFrequency(f float64) { s.freq = f }

// SetDuty sets the duty cycle, clamped to (0, 1).
func (s *Square) SetDuty(d float64) {
	if d <= 0 {
		d = 1 / s.sampleRate
	}
	if d >= 1 {
		d = 1 - 1/s.sampleRate
	}
	s.duty = d
}

// Process produces the next sample.
func (s *Square) Process() bae.Sample {
	y := 1.0
	if s.phase >= s.duty {
		y = -1.0
	}
	s.phase += s.freq / s.sampleRate
	if s.phase >= 1 {
		s.phase -= 1
	}
	return bae.MonoSample(y)
}
