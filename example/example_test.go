package example_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isgasho/BAE"
	"github.com/isgasho/BAE/example"
	"github.com/isgasho/BAE/sound"
)

func notSilentWithin(s *sound.Sound, ticks int) bool {
	for i := 0; i < ticks; i++ {
		if out := s.Process(bae.Sample{}); out != (bae.Sample{}) {
			return true
		}
	}
	return false
}

func TestChordProducesSignal(t *testing.T) {
	assert.True(t, notSilentWithin(example.Chord(220), 100))
}

func TestTremoloSineProducesSignal(t *testing.T) {
	assert.True(t, notSilentWithin(example.TremoloSine(440), 100))
}

func TestPluckProducesSignal(t *testing.T) {
	assert.True(t, notSilentWithin(example.Pluck(), 100))
}

func TestRenderWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chord.wav")
	err := example.RenderWav(path, example.Chord(220), 10*time.Millisecond)
	require.NoError(t, err)
}
