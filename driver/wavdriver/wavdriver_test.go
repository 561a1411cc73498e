package wavdriver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isgasho/BAE"
	"github.com/isgasho/BAE/driver/wavdriver"
	"github.com/isgasho/BAE/generator"
	"github.com/isgasho/BAE/mock"
	"github.com/isgasho/BAE/sound"
)

func TestRenderWav(t *testing.T) {
	const ticks = 1000
	path := filepath.Join(t.TempDir(), "out.wav")

	s := sound.NewSound(1, 1)
	g := s.Graph()
	src := g.AddNode(sound.SourceNode(mock.NewConstSource(0.25)))
	g.Connect(src, g.OutputGain())

	d := wavdriver.New(path, 48000)
	s.Register(d)
	require.NoError(t, d.Render(ticks))
	s.Unregister()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)

	assert.Equal(t, 2, buf.Format.NumChannels)
	assert.Equal(t, 48000, buf.Format.SampleRate)
	require.Len(t, buf.Data, ticks*2)
	for i, v := range buf.Data {
		assert.InDelta(t, 0.25, float64(v)/32767, 1e-3, "value %d", i)
	}
}

func TestRenderedWavPlaysBackAsSource(t *testing.T) {
	const ticks = 200
	path := filepath.Join(t.TempDir(), "loop.wav")

	s := sound.NewSound(1, 1)
	g := s.Graph()
	src := g.AddNode(sound.SourceNode(mock.NewConstSource(0.5)))
	g.Connect(src, g.OutputGain())

	d := wavdriver.New(path, 48000, wavdriver.WithBitDepth(24))
	s.Register(d)
	require.NoError(t, d.Render(ticks))
	s.Unregister()

	w, err := generator.NewWav(path, 48000)
	require.NoError(t, err)
	for i := 0; i < ticks; i++ {
		out := w.Process()
		assert.InDelta(t, 0.5, out.Left, 1e-3, "tick %d", i)
		assert.InDelta(t, 0.5, out.Right, 1e-3, "tick %d", i)
	}
	assert.True(t, w.Done())
	assert.Equal(t, bae.Sample{}, w.Process())
}

func TestRenderInvalidPath(t *testing.T) {
	d := wavdriver.New(filepath.Join(t.TempDir(), "missing", "out.wav"), 48000)
	assert.Error(t, d.Render(1))
}
