package generator

import (
	"math/rand"

	"github.com/isgasho/BAE"
)

// Noise produces uniform white noise in [-1, 1] on both channels
// independently.
type Noise struct {
	rand *rand.Rand
}

// NewNoise creates a white noise generator.
func NewNoise() *Noise {
	return &Noise{rand: rand.New(rand.NewSource(rand.Int63()))}
}

// NewNoiseSeeded creates a white noise generator with a fixed seed,
// producing a reproducible sequence.
func NewNoiseSeeded(seed int64) *Noise {
	return &Noise{rand: rand.New(rand.NewSource(seed))}
}

// Process produces the next sample.
func (n *Noise) Process() bae.Sample {
	return bae.StereoSample(
		2*n.rand.Float64()-1,
		2*n.rand.Float64()-1,
	)
}
