package modifier_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/isgasho/BAE"
	"github.com/isgasho/BAE/modifier"
)

func TestGain(t *testing.T) {
	tests := []struct {
		description string
		gain        float64
		in          bae.Sample
		expected    bae.Sample
	}{
		{
			description: "unity gain passes through",
			gain:        1,
			in:          bae.StereoSample(0.5, -0.5),
			expected:    bae.StereoSample(0.5, -0.5),
		},
		{
			description: "half gain attenuates",
			gain:        0.5,
			in:          bae.StereoSample(1, 1),
			expected:    bae.StereoSample(0.5, 0.5),
		},
		{
			description: "negative gain inverts",
			gain:        -1,
			in:          bae.StereoSample(0.25, -0.25),
			expected:    bae.StereoSample(-0.25, 0.25),
		},
	}
	for _, test := range tests {
		g := modifier.NewGain(test.gain)
		assert.Equal(t, test.expected, g.Process(test.in), test.description)
		assert.Equal(t, test.gain, g.Gain(), test.description)
	}
}

func TestADSREnvelope(t *testing.T) {
	const sampleRate = 100
	in := bae.StereoSample(1, 1)

	// attack 50ms = 5 ticks, decay 50ms to -6.0206dB (0.5), release 50ms
	a := modifier.NewADSR(
		50*time.Millisecond,
		50*time.Millisecond,
		bae.LinearToDB(0.5),
		50*time.Millisecond,
		sampleRate,
	)

	attack := []float64{0.2, 0.4, 0.6, 0.8, 1.0}
	for i, want := range attack {
		assert.InDelta(t, want, a.Process(in).Left, 1e-9, "attack tick %d", i)
	}

	decay := []float64{0.9, 0.8, 0.7, 0.6, 0.5}
	for i, want := range decay {
		assert.InDelta(t, want, a.Process(in).Left, 1e-9, "decay tick %d", i)
	}

	// sustain holds until release
	for i := 0; i < 10; i++ {
		assert.InDelta(t, 0.5, a.Process(in).Left, 1e-9, "sustain tick %d", i)
	}

	a.Release()
	release := []float64{0.4, 0.3, 0.2, 0.1, 0}
	for i, want := range release {
		assert.InDelta(t, want, a.Process(in).Left, 1e-9, "release tick %d", i)
	}

	// stopped: silence regardless of input
	assert.Equal(t, bae.Sample{}, a.Process(in))
}

func TestLowPassDCGainIsUnity(t *testing.T) {
	lp := modifier.NewLowPass(1000, 0, 48000)
	in := bae.StereoSample(1, 1)

	var out bae.Sample
	for i := 0; i < 20000; i++ {
		out = lp.Process(in)
	}
	assert.InDelta(t, 1, out.Left, 1e-3)
	assert.InDelta(t, 1, out.Right, 1e-3)
}

func TestLowPassAttenuatesNyquist(t *testing.T) {
	lp := modifier.NewLowPass(1000, 0, 48000)

	var peak float64
	x := 1.0
	for i := 0; i < 2000; i++ {
		out := lp.Process(bae.StereoSample(x, x))
		if i > 1000 {
			peak = math.Max(peak, math.Abs(out.Left))
		}
		x = -x
	}
	assert.Less(t, peak, 0.05)
}

func TestHighPassRejectsDC(t *testing.T) {
	hp := modifier.NewHighPass(1000, 0, 48000)
	in := bae.StereoSample(1, 1)

	var out bae.Sample
	for i := 0; i < 20000; i++ {
		out = hp.Process(in)
	}
	assert.InDelta(t, 0, out.Left, 1e-3)
}

func TestHighPassClampsParameters(t *testing.T) {
	hp := modifier.NewHighPass(96000, 2, 48000)
	assert.Equal(t, 24000.0, hp.CutoffFrequency())
	assert.Equal(t, 1.0, hp.Resonance())
}

func TestBandPassRejectsDC(t *testing.T) {
	bp := modifier.NewBandPass(1000, 1, 48000)
	in := bae.StereoSample(1, 1)

	var out bae.Sample
	for i := 0; i < 20000; i++ {
		out = bp.Process(in)
	}
	assert.InDelta(t, 0, out.Left, 1e-3)
}

func TestBandPassFromCorners(t *testing.T) {
	bp := modifier.NewBandPassFromCorners(800, 1250, 48000)
	assert.InDelta(t, 1000, bp.CentralFrequency(), 1)
}

func TestEchoDelaysAndDecays(t *testing.T) {
	e := modifier.NewEcho(3, 0.5)

	impulse := bae.StereoSample(1, 1)
	silence := bae.Sample{}

	assert.Equal(t, impulse, e.Process(impulse))
	assert.Equal(t, silence, e.Process(silence))
	assert.Equal(t, silence, e.Process(silence))

	// first repeat after the delay, scaled by the decay ratio
	assert.Equal(t, bae.StereoSample(0.5, 0.5), e.Process(silence))
	assert.Equal(t, silence, e.Process(silence))
	assert.Equal(t, silence, e.Process(silence))

	// the repeat feeds back
	assert.Equal(t, bae.StereoSample(0.25, 0.25), e.Process(silence))
}
