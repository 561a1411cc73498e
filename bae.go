// Package bae provides the shared value types for the audio engine:
// the stereo Sample and the math helpers used across generators,
// modifiers and the sound graph.
package bae

import "math"

// SampleRate is the default playback rate in frames per second.
const SampleRate = 48000

// Sample is a single stereophonic audio frame. The zero value is silence.
// All arithmetic is channel-independent.
type Sample struct {
	Left  float64
	Right float64
}

// StereoSample returns a sample built from individual channel values.
func StereoSample(l, r float64) Sample {
	return Sample{Left: l, Right: r}
}

// MonoSample spreads a monophonic value across both channels, reducing
// the power by half to keep the perceived loudness.
func MonoSample(x float64) Sample {
	x *= math.Sqrt2 / 2
	return Sample{Left: x, Right: x}
}

// Mono folds the sample down to a single full-power monophonic value.
// It inverts MonoSample.
func (s Sample) Mono() float64 {
	return (s.Left + s.Right) * math.Sqrt2 / 2
}

// Add returns the channel-wise sum of two samples.
func (s Sample) Add(rhs Sample) Sample {
	return Sample{Left: s.Left + rhs.Left, Right: s.Right + rhs.Right}
}

// Sub returns the channel-wise difference of two samples.
func (s Sample) Sub(rhs Sample) Sample {
	return Sample{Left: s.Left - rhs.Left, Right: s.Right - rhs.Right}
}

// Neg returns the sample with both channels inverted.
func (s Sample) Neg() Sample {
	return Sample{Left: -s.Left, Right: -s.Right}
}

// Mul returns the channel-wise product of two samples.
func (s Sample) Mul(rhs Sample) Sample {
	return Sample{Left: s.Left * rhs.Left, Right: s.Right * rhs.Right}
}

// Gain returns the sample scaled by a linear factor. Negative factors
// invert the signal.
func (s Sample) Gain(k float64) Sample {
	return Sample{Left: s.Left * k, Right: s.Right * k}
}

// PanSample places a monophonic value in the stereo field. The pan value
// ranges from -1 (hard left) to 1 (hard right); the opposite channel is
// tapered down to -120 dB.
func PanSample(x, pan float64) Sample {
	l := Lerp(pan, -1, 1, 0, -120)
	r := Lerp(pan, -1, 1, -120, 0)
	return Sample{
		Left:  DBToLinear(l) * x,
		Right: DBToLinear(r) * x,
	}
}

// DBToLinear converts a decibel value to a linear gain factor.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts a linear gain factor to decibels.
func LinearToDB(g float64) float64 {
	return 20 * math.Log10(g)
}

// Lerp maps x from the range [x1, x2] to the range [y1, y2].
func Lerp(x, x1, x2, y1, y2 float64) float64 {
	return y1 + (x-x1)*(y2-y1)/(x2-x1)
}
