package modifier

import (
	"math"
	"time"

	"github.com/isgasho/BAE"
)

type adsrState int

const (
	stateAttack adsrState = iota
	stateDecay
	stateSustain
	stateRelease
	stateStopped
)

// ADSR is a linear attack-decay-sustain-release envelope. It starts in
// the attack phase on construction and advances its gain once per tick.
// After Release is triggered the envelope decays to zero and then outputs
// silence.
type ADSR struct {
	attack  float64
	decay   float64
	sustain float64
	release float64

	state adsrState
	gain  float64
}

// NewADSR creates an envelope from the attack, decay and release times
// and the sustain level in decibels. Sustain values above 0 dB are
// clamped to 0.
func NewADSR(attack, decay time.Duration, sustain float64, release time.Duration, sampleRate float64) *ADSR {
	sustain = math.Min(sustain, 0)
	level := bae.DBToLinear(sustain)
	return &ADSR{
		attack:  1 / (attack.Seconds() * sampleRate),
		decay:   (level - 1) / (decay.Seconds() * sampleRate),
		sustain: level,
		release: -level / (release.Seconds() * sampleRate),
		state:   stateAttack,
	}
}

// Release moves the envelope into its release phase.
func (a *ADSR) Release() {
	a.state = stateRelease
}

// Process scales the input by the envelope's current gain and advances
// the envelope by one tick.
func (a *ADSR) Process(x bae.Sample) bae.Sample {
	switch a.state {
	case stateAttack:
		a.gain += a.attack
		if a.gain >= 1 {
			a.state = stateDecay
			a.gain = 1
		}
	case stateDecay:
		a.gain += a.decay
		if a.gain <= a.sustain {
			a.state = stateSustain
			a.gain = a.sustain
		}
	case stateSustain:
	case stateRelease:
		a.gain += a.release
		if a.gain <= 0 {
			a.state = stateStopped
			a.gain = 0
		}
	case stateStopped:
		return bae.Sample{}
	}
	return x.Gain(a.gain)
}
