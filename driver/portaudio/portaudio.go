// Package portaudio implements realtime playback of registered sounds
// through the default portaudio output device.
package portaudio

import (
	"github.com/gordonklaus/portaudio"

	"github.com/isgasho/BAE/driver"
)

const (
	defaultBufferSize = 512
	numChannels       = 2
)

// Driver plays the mixdown of its registered sounds on the default
// output device. Sounds are registered through the embedded Registry.
type Driver struct {
	*driver.Registry

	sampleRate float64
	bufferSize int

	buf    []float32
	stream *portaudio.Stream
	done   chan struct{}
	errc   chan error
}

// Option configures optional driver parameters.
type Option func(*Driver)

// WithBufferSize sets the stream buffer size in frames.
func WithBufferSize(size int) Option {
	return func(d *Driver) {
		d.bufferSize = size
	}
}

// New creates a playback driver for the given sample rate.
func New(sampleRate float64, options ...Option) *Driver {
	d := &Driver{
		Registry:   driver.NewRegistry(),
		sampleRate: sampleRate,
		bufferSize: defaultBufferSize,
	}
	for _, option := range options {
		option(d)
	}
	return d
}

// Start opens the default stereo stream and begins pulling samples from
// the registered sounds on a background goroutine. Topology edits and
// registrations must not run concurrently with a started driver.
func (d *Driver) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	d.buf = make([]float32, d.bufferSize*numChannels)
	stream, err := portaudio.OpenDefaultStream(0, numChannels, d.sampleRate, d.bufferSize, &d.buf)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}
	d.stream = stream
	d.done = make(chan struct{})
	d.errc = make(chan error, 1)
	go d.loop()
	return nil
}

func (d *Driver) loop() {
	defer close(d.errc)
	for {
		select {
		case <-d.done:
			return
		default:
		}
		for i := 0; i < d.bufferSize; i++ {
			out := d.Output()
			d.buf[i*numChannels] = float32(out.Left)
			d.buf[i*numChannels+1] = float32(out.Right)
		}
		if err := d.stream.Write(); err != nil {
			d.errc <- err
			return
		}
	}
}

// Errc returns the channel carrying a fatal stream error, if any. It is
// closed when the playback loop exits.
func (d *Driver) Errc() <-chan error {
	return d.errc
}

// Stop stops the playback loop and releases the stream.
func (d *Driver) Stop() error {
	close(d.done)
	<-d.errc
	err := d.stream.Stop()
	if cerr := d.stream.Close(); err == nil {
		err = cerr
	}
	if terr := portaudio.Terminate(); err == nil {
		err = terr
	}
	return err
}
