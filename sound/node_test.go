package sound_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/isgasho/BAE"
	"github.com/isgasho/BAE/mock"
	"github.com/isgasho/BAE/sound"
)

func TestPrimeInputAccumulates(t *testing.T) {
	tr := mock.NewTransform()
	n := sound.TransformNode(tr)

	n.PrimeInput(bae.StereoSample(0.25, 0.5))
	n.PrimeInput(bae.StereoSample(0.25, -0.25))
	out := n.Process()

	// fan-in contributions sum, they never replace each other
	assert.Equal(t, bae.StereoSample(0.5, 0.25), out)
	assert.Equal(t, []bae.Sample{bae.StereoSample(0.5, 0.25)}, tr.Inputs)
}

func TestProcessResetsAccumulator(t *testing.T) {
	tr := mock.NewTransform()
	n := sound.TransformNode(tr)

	n.PrimeInput(bae.StereoSample(1, 1))
	n.Process()
	out := n.Process()

	assert.Equal(t, bae.Sample{}, out)
	assert.Equal(t, bae.Sample{}, tr.Inputs[1])
}

func TestSourceNodeIgnoresInput(t *testing.T) {
	src := mock.NewConstSource(0.5)
	n := sound.SourceNode(src)

	n.PrimeInput(bae.StereoSample(1, 1))
	out := n.Process()

	assert.Equal(t, bae.StereoSample(0.5, 0.5), out)
	assert.Equal(t, 1, src.Calls)
}

func TestTransformNodeHasSilentSource(t *testing.T) {
	tr := mock.NewTransform()
	tr.Gain = 2
	n := sound.TransformNode(tr)

	n.PrimeInput(bae.StereoSample(0.25, 0.25))
	out := n.Process()

	assert.Equal(t, bae.StereoSample(0.5, 0.5), out)
}

func TestMultiplyCombinator(t *testing.T) {
	src := mock.NewConstSource(0.5)
	n := sound.NewNode(src, mock.NewTransform(), sound.Multiply)

	n.PrimeInput(bae.StereoSample(0.5, -0.5))
	out := n.Process()

	// amplitude modulation: source output times transform output
	assert.Equal(t, bae.StereoSample(0.25, -0.25), out)
}

func TestEmptyContracts(t *testing.T) {
	assert.Equal(t, bae.Sample{}, sound.EmptySource{}.Process())

	x := bae.StereoSample(0.3, -0.7)
	assert.Equal(t, x, sound.EmptyTransform{}.Process(x))
}
