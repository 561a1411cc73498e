// Package mp3driver renders the mixdown of registered sounds into an mp3
// file through the lame encoder.
package mp3driver

import (
	"os"

	"github.com/viert/lame"

	"github.com/isgasho/BAE"
	"github.com/isgasho/BAE/driver"
	"github.com/isgasho/BAE/pcm"
)

const (
	defaultBitRate = 192
	defaultQuality = 2

	renderChunk = 512
)

// Driver renders its registered sounds to an mp3 file. Sounds are
// registered through the embedded Registry.
type Driver struct {
	*driver.Registry

	path       string
	sampleRate int
	bitRate    int
	quality    int
}

// Option configures optional encoder parameters.
type Option func(*Driver)

// WithBitRate sets the encoder bit rate in kbit/s.
func WithBitRate(bitRate int) Option {
	return func(d *Driver) {
		d.bitRate = bitRate
	}
}

// WithQuality sets the encoder quality, 0 (best) to 9 (worst).
func WithQuality(quality int) Option {
	return func(d *Driver) {
		d.quality = quality
	}
}

// New creates an mp3 render driver writing to path at the given rate.
func New(path string, sampleRate int, options ...Option) *Driver {
	d := &Driver{
		Registry:   driver.NewRegistry(),
		path:       path,
		sampleRate: sampleRate,
		bitRate:    defaultBitRate,
		quality:    defaultQuality,
	}
	for _, option := range options {
		option(d)
	}
	return d
}

// Render pulls the given number of ticks from the registered sounds and
// writes the encoded mixdown to the mp3 file.
func (d *Driver) Render(ticks int) error {
	f, err := os.Create(d.path)
	if err != nil {
		return err
	}

	wr := lame.NewWriter(f)
	wr.Encoder.SetBitrate(d.bitRate)
	wr.Encoder.SetQuality(d.quality)
	wr.Encoder.SetNumChannels(2)
	wr.Encoder.SetInSamplerate(d.sampleRate)
	wr.Encoder.SetMode(lame.JOINT_STEREO)
	wr.Encoder.SetVBR(lame.VBR_RH)
	wr.Encoder.InitParams()

	chunk := make([]bae.Sample, 0, renderChunk)
	for ticks > 0 {
		n := renderChunk
		if ticks < n {
			n = ticks
		}
		chunk = chunk[:0]
		for i := 0; i < n; i++ {
			chunk = append(chunk, d.Output())
		}
		data, err := pcm.Marshal(chunk, pcm.BitDepth16)
		if err != nil {
			f.Close()
			return err
		}
		if _, err := wr.Write(data); err != nil {
			f.Close()
			return err
		}
		ticks -= n
	}

	if err := wr.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
