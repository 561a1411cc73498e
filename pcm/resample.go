package pcm

import "github.com/isgasho/BAE"

// Resampler plays a recorded track back at the engine rate, linearly
// interpolating between source frames. The read position advances by
// srcRate/dstRate (scaled by the playback speed) per tick. With loop
// points set, the position wraps from the loop end back to the loop
// start; otherwise a track that has run out produces silence.
type Resampler struct {
	data []bae.Sample

	index     float64
	ratio     float64
	increment float64

	loopStart int
	loopEnd   int
	looping   bool
}

// NewResampler creates a resampler over the given track recorded at
// srcRate, to be played back at dstRate.
func NewResampler(data []bae.Sample, srcRate, dstRate float64) *Resampler {
	ratio := srcRate / dstRate
	return &Resampler{
		data:      data,
		ratio:     ratio,
		increment: ratio,
	}
}

// SetSpeed scales the playback rate. 1 is the recorded speed, 2 plays an
// octave up.
func (r *Resampler) SetSpeed(speed float64) {
	r.increment = r.ratio * speed
}

// SetLoop makes playback wrap from end back to start, both in source
// frames. Passing start >= end clears the loop.
func (r *Resampler) SetLoop(start, end int) {
	if start >= end || end > len(r.data) {
		r.looping = false
		return
	}
	r.loopStart = start
	r.loopEnd = end
	r.looping = true
}

// Done reports whether a non-looping track has been fully consumed.
func (r *Resampler) Done() bool {
	return !r.looping && int(r.index) >= len(r.data)
}

// Process produces the next interpolated sample and advances the read
// position.
func (r *Resampler) Process() bae.Sample {
	if len(r.data) == 0 {
		return bae.Sample{}
	}
	if r.looping {
		for int(r.index) >= r.loopEnd {
			r.index -= float64(r.loopEnd - r.loopStart)
		}
	} else if int(r.index) >= len(r.data) {
		return bae.Sample{}
	}

	i := int(r.index)
	frac := r.index - float64(i)

	s := r.data[i]
	if next := i + 1; frac > 0 && next < len(r.data) {
		s = s.Add(r.data[next].Sub(s).Gain(frac))
	}

	r.index += r.increment
	return s
}
