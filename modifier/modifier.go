// Package modifier provides the stock signal transforms: gain, envelope
// and a set of recursive filters. Every modifier processes exactly one
// sample per tick and keeps its own history.
package modifier

import "github.com/isgasho/BAE"

// Gain scales the input by a linear factor. The factor can be negative,
// which inverts the signal. Gain is also the transform behind the graph's
// input and output sentinels.
type Gain struct {
	gain float64
}

// NewGain creates a gain modifier with the given linear factor.
func NewGain(g float64) *Gain {
	return &Gain{gain: g}
}

// SetGain sets the linear gain factor.
func (g *Gain) SetGain(v float64) { g.gain = v }

// Gain returns the linear gain factor.
func (g *Gain) Gain() float64 { return g.gain }

// Process scales the input sample.
func (g *Gain) Process(x bae.Sample) bae.Sample {
	return x.Gain(g.gain)
}
