package modifier

import (
	"math"

	"github.com/isgasho/BAE"
)

// HighPass is an 18 dB/octave high-pass filter with resonance, derived
// from the third-order Butterworth low-pass filter.
type HighPass struct {
	a0, a1, a2, a3 float64
	b1, b2, b3     float64

	x1, x2, x3 bae.Sample
	y1, y2, y3 bae.Sample

	fc, r      float64
	sampleRate float64
}

// NewHighPass creates a high-pass filter with the given cutoff frequency
// and resonance. The resonance is clamped to [0, 1] and the cutoff to the
// Nyquist frequency.
func NewHighPass(fc, r, sampleRate float64) *HighPass {
	hp := &HighPass{sampleRate: sampleRate}
	hp.fc = math.Min(fc, sampleRate/2)
	hp.r = math.Min(math.Max(r, 0), 1)
	hp.reset()
	return hp
}

// CutoffFrequency returns the cutoff frequency of the filter.
func (hp *HighPass) CutoffFrequency() float64 { return hp.fc }

// SetCutoffFrequency sets the cutoff frequency of the filter.
func (hp *HighPass) SetCutoffFrequency(fc float64) {
	hp.fc = math.Min(fc, hp.sampleRate/2)
	hp.reset()
}

// Resonance returns the resonance of the filter.
func (hp *HighPass) Resonance() float64 { return hp.r }

// SetResonance sets the resonance of the filter, clamped to [0, 1].
func (hp *HighPass) SetResonance(r float64) {
	hp.r = math.Min(math.Max(r, 0), 1)
	hp.reset()
}

func (hp *HighPass) reset() {
	theta := math.Pi * (4 - hp.r) / 6
	k := 1 - 2*math.Cos(theta)
	w := 2 * math.Pi * hp.fc
	t := w / hp.sampleRate
	g := math.Pow(t, 3) + k*math.Pow(t, 2) + k*t + 1

	hp.a0 = 1 / g
	hp.a1 = -3 / g
	hp.a2 = 3 / g
	hp.a3 = -1 / g

	hp.b1 = (k*math.Pow(t, 2) + 2*k*t + 3) / g
	hp.b2 = (-k*t - 3) / g
	hp.b3 = 1 / g
}

// Process filters one sample.
func (hp *HighPass) Process(x bae.Sample) bae.Sample {
	y := x.Gain(hp.a0).
		Add(hp.x1.Gain(hp.a1)).
		Add(hp.x2.Gain(hp.a2)).
		Add(hp.x3.Gain(hp.a3)).
		Add(hp.y1.Gain(hp.b1)).
		Add(hp.y2.Gain(hp.b2)).
		Add(hp.y3.Gain(hp.b3))

	hp.x3 = hp.x2
	hp.x2 = hp.x1
	hp.x1 = x
	hp.y3 = hp.y2
	hp.y2 = hp.y1
	hp.y1 = y

	return y
}
