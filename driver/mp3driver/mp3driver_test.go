package mp3driver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isgasho/BAE/driver/mp3driver"
	"github.com/isgasho/BAE/mock"
	"github.com/isgasho/BAE/sound"
)

func TestRenderMP3(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mp3")

	s := sound.NewSound(1, 1)
	g := s.Graph()
	src := g.AddNode(sound.SourceNode(mock.NewConstSource(0.25)))
	g.Connect(src, g.OutputGain())

	d := mp3driver.New(path, 48000, mp3driver.WithBitRate(128), mp3driver.WithQuality(5))
	s.Register(d)
	require.NoError(t, d.Render(2000))
	s.Unregister()

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestRenderInvalidPath(t *testing.T) {
	d := mp3driver.New(filepath.Join(t.TempDir(), "missing", "out.mp3"), 48000)
	assert.Error(t, d.Render(1))
}
