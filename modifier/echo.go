package modifier

import "github.com/isgasho/BAE"

// Echo is a feedback delay line. Each tick mixes the sample delayed by
// the configured number of ticks, scaled by the decay ratio, back into
// the dry input.
type Echo struct {
	line  []bae.Sample
	pos   int
	ratio float64
}

// NewEcho creates an echo with the given delay in ticks and feedback
// decay ratio.
func NewEcho(delay int, ratio float64) *Echo {
	if delay < 1 {
		delay = 1
	}
	return &Echo{
		line:  make([]bae.Sample, delay),
		ratio: ratio,
	}
}

// Process mixes the delayed signal into the input and feeds the result
// back into the delay line.
func (e *Echo) Process(dry bae.Sample) bae.Sample {
	wet := e.line[e.pos]
	out := wet.Gain(e.ratio).Add(dry)
	e.line[e.pos] = out
	e.pos = (e.pos + 1) % len(e.line)
	return out
}
