// Package wavdriver renders the mixdown of registered sounds into a wav
// file, for offline use of the engine.
package wavdriver

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/isgasho/BAE/driver"
)

const (
	defaultBitDepth = 16
	numChannels     = 2
	wavAudioFormat  = 1

	renderChunk = 512
)

// Driver renders its registered sounds to a wav file. Sounds are
// registered through the embedded Registry.
type Driver struct {
	*driver.Registry

	path       string
	sampleRate int
	bitDepth   int
}

// Option configures optional driver parameters.
type Option func(*Driver)

// WithBitDepth sets the output bit depth. Supported values are 16 and 24.
func WithBitDepth(depth int) Option {
	return func(d *Driver) {
		d.bitDepth = depth
	}
}

// New creates a wav render driver writing to path at the given rate.
func New(path string, sampleRate int, options ...Option) *Driver {
	d := &Driver{
		Registry:   driver.NewRegistry(),
		path:       path,
		sampleRate: sampleRate,
		bitDepth:   defaultBitDepth,
	}
	for _, option := range options {
		option(d)
	}
	return d
}

// Render pulls the given number of ticks from the registered sounds and
// writes the mixdown to the wav file.
func (d *Driver) Render(ticks int) error {
	f, err := os.Create(d.path)
	if err != nil {
		return err
	}
	e := wav.NewEncoder(f, d.sampleRate, d.bitDepth, numChannels, wavAudioFormat)

	scale := float64(int(1)<<(uint(d.bitDepth)-1) - 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  d.sampleRate,
		},
		SourceBitDepth: d.bitDepth,
	}

	for ticks > 0 {
		chunk := renderChunk
		if ticks < chunk {
			chunk = ticks
		}
		buf.Data = buf.Data[:0]
		for i := 0; i < chunk; i++ {
			out := d.Output()
			buf.Data = append(buf.Data, int(clamp(out.Left)*scale), int(clamp(out.Right)*scale))
		}
		if err := e.Write(buf); err != nil {
			f.Close()
			return err
		}
		ticks -= chunk
	}

	if err := e.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func clamp(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
