package modifier

import (
	"math"

	"github.com/isgasho/BAE"
)

// LowPass is a third-order Butterworth low-pass filter with resonance,
// rolling off at 18 dB per octave above the cutoff.
type LowPass struct {
	a0, b1, b2, b3 float64

	y1, y2, y3 bae.Sample

	fc, r      float64
	sampleRate float64
}

// NewLowPass creates a low-pass filter with the given cutoff frequency
// and resonance. The resonance is clamped to [0, 1] and the cutoff to the
// Nyquist frequency.
func NewLowPass(fc, r, sampleRate float64) *LowPass {
	lp := &LowPass{sampleRate: sampleRate}
	lp.fc = math.Min(fc, sampleRate/2)
	lp.r = math.Min(math.Max(r, 0), 1)
	lp.reset()
	return lp
}

// CutoffFrequency returns the cutoff frequency of the filter.
func (lp *LowPass) CutoffFrequency() float64 { return lp.fc }

// SetCutoffFrequency sets the cutoff frequency of the filter.
func (lp *LowPass) SetCutoffFrequency(fc float64) {
	lp.fc = math.Min(fc, lp.sampleRate/2)
	lp.reset()
}

// Resonance returns the resonance of the filter.
func (lp *LowPass) Resonance() float64 { return lp.r }

// SetResonance sets the resonance of the filter, clamped to [0, 1].
func (lp *LowPass) SetResonance(r float64) {
	lp.r = math.Min(math.Max(r, 0), 1)
	lp.reset()
}

func (lp *LowPass) reset() {
	theta := math.Pi * (4 - lp.r) / 6
	k := 1 - 2*math.Cos(theta)
	w := 2 * math.Pi * lp.fc
	t := w / lp.sampleRate
	g := math.Pow(t, 3) + k*math.Pow(t, 2) + k*t + 1

	lp.a0 = math.Pow(t, 3) / g
	lp.b1 = (k*math.Pow(t, 2) + 2*k*t + 3) / g
	lp.b2 = (-k*t - 3) / g
	lp.b3 = 1 / g
}

// Process filters one sample.
func (lp *LowPass) Process(x bae.Sample) bae.Sample {
	y := x.Gain(lp.a0).
		Add(lp.y1.Gain(lp.b1)).
		Add(lp.y2.Gain(lp.b2)).
		Add(lp.y3.Gain(lp.b3))

	lp.y3 = lp.y2
	lp.y2 = lp.y1
	lp.y1 = y

	return y
}
