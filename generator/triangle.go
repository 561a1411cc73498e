package generator

import "github.com/isgasho/BAE"

// Triangle produces a triangle wave by running a ramp at four times the
// frequency and folding it at the peaks.
type Triangle struct {
	rate       float64
	value      float64
	sampleRate float64
}

// NewTriangle creates a triangle generator for the given frequency.
func NewTriangle(freq, sampleRate float64) *Triangle {
	return &Triangle{rate: 4 * freq / sampleRate, sampleRate: sampleRate}
}

// Frequency returns the generator's frequency.
func (t *Triangle) Frequency() float64 {
	f := t.rate * t.sampleRate / 4
	if f < 0 {
		f = -f
	}
	return f
}

// SetFrequency sets the generator's frequency. The ramp direction is
// preserved.
func (t *Triangle) SetFrequency(f float64) {
	if t.rate < 0 {
		f = -f
	}
	t.rate = 4 * f / t.sampleRate
}

// Process produces the next sample.
func (t *Triangle) Process() bae.Sample {
	t.value += t.rate

	if t.value >= 1 || t.value <= -1 {
		t.rate = -t.rate
		if t.value >= 1 {
			t.value = 2 - t.value
		} else {
			t.value = -2 - t.value
		}
	}

	return bae.MonoSample(t.value)
}
