package modifier

import (
	"math"

	"github.com/isgasho/BAE"
)

// BandPass is a two-pole band-pass filter defined by a central frequency
// and a quality factor.
type BandPass struct {
	fc, q float64

	a0, b1, b2 float64

	x1, x2 bae.Sample
	y1, y2 bae.Sample

	sampleRate float64
}

// NewBandPass creates a band-pass filter from a central frequency and a
// quality factor.
func NewBandPass(fc, q, sampleRate float64) *BandPass {
	bp := &BandPass{fc: fc, q: q, sampleRate: sampleRate}
	bp.reset()
	return bp
}

// NewBandPassFromCorners creates a band-pass filter from its lower and
// upper corner frequencies.
func NewBandPassFromCorners(fl, fh, sampleRate float64) *BandPass {
	fc := math.Sqrt(math.Abs(fl * fh))
	bp := &BandPass{
		fc:         fc,
		q:          fc / math.Abs(fh-fl),
		sampleRate: sampleRate,
	}
	bp.reset()
	return bp
}

// CentralFrequency returns the central frequency of the filter.
func (bp *BandPass) CentralFrequency() float64 { return bp.fc }

// SetCentralFrequency sets the central frequency of the filter.
func (bp *BandPass) SetCentralFrequency(fc float64) {
	bp.fc = fc
	bp.reset()
}

// Quality returns the quality factor of the filter.
func (bp *BandPass) Quality() float64 { return bp.q }

// SetQuality sets the quality factor of the filter.
func (bp *BandPass) SetQuality(q float64) {
	bp.q = q
	bp.reset()
}

// CornerFrequencies returns the corner frequencies of the filter.
func (bp *BandPass) CornerFrequencies() (float64, float64) {
	fl, fh := bp.corners()
	return fl, fh
}

func (bp *BandPass) corners() (float64, float64) {
	b := -bp.fc / bp.q
	c := -bp.fc * bp.fc

	p, n := quadratic(1, b, c)
	fl := p
	if p <= 0 {
		fl = n
	}
	return fl, fl + b
}

func (bp *BandPass) reset() {
	fl, fh := bp.corners()

	thetaL := math.Tan(math.Pi * fl / bp.sampleRate)
	thetaH := math.Tan(math.Pi * fh / bp.sampleRate)

	al := 1 / (1 + thetaL)
	ah := 1 / (1 + thetaH)

	bl := (1 - thetaL) / (1 + thetaL)
	bh := (1 - thetaH) / (1 + thetaH)

	bp.a0 = (1 - al) * ah
	bp.b1 = bl + bh
	bp.b2 = bl * bh
}

// Process filters one sample.
func (bp *BandPass) Process(x bae.Sample) bae.Sample {
	y := x.Sub(bp.x2).Gain(bp.a0).
		Add(bp.y1.Gain(bp.b1)).
		Sub(bp.y2.Gain(bp.b2))

	bp.y2 = bp.y1
	bp.y1 = y
	bp.x2 = bp.x1
	bp.x1 = x

	return y
}

func quadratic(a, b, c float64) (float64, float64) {
	d := math.Sqrt(b*b - 4*a*c)
	return (-b + d) / (2 * a), (-b - d) / (2 * a)
}
