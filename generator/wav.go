package generator

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/wav"

	"github.com/isgasho/BAE"
	"github.com/isgasho/BAE/pcm"
)

// ErrInvalidWav is returned when a file is not a decodable wav file.
var ErrInvalidWav = errors.New("generator: invalid wav file")

// Wav plays a wav file back as a source. The file is decoded up front and
// streamed through a resampler, so files recorded at a foreign rate play
// at the correct pitch. A finished non-looping track produces silence.
type Wav struct {
	resampler *pcm.Resampler
}

// NewWav decodes the wav file at path for playback at the given engine
// rate. Mono files are duplicated onto both channels.
func NewWav(path string, sampleRate float64) (*Wav, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidWav, path)
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, err
	}

	scale := float64(int(1)<<(uint(d.BitDepth)-1) - 1)
	var track []bae.Sample
	switch buf.Format.NumChannels {
	case 1:
		track = make([]bae.Sample, len(buf.Data))
		for i, v := range buf.Data {
			x := float64(v) / scale
			track[i] = bae.StereoSample(x, x)
		}
	case 2:
		track = make([]bae.Sample, len(buf.Data)/2)
		for i := range track {
			track[i] = bae.StereoSample(
				float64(buf.Data[2*i])/scale,
				float64(buf.Data[2*i+1])/scale,
			)
		}
	default:
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidWav, buf.Format.NumChannels)
	}

	return &Wav{
		resampler: pcm.NewResampler(track, float64(d.SampleRate), sampleRate),
	}, nil
}

// SetLoop makes playback wrap between the given source frames.
func (w *Wav) SetLoop(start, end int) {
	w.resampler.SetLoop(start, end)
}

// SetSpeed scales the playback rate.
func (w *Wav) SetSpeed(speed float64) {
	w.resampler.SetSpeed(speed)
}

// Done reports whether a non-looping track has been fully played.
func (w *Wav) Done() bool { return w.resampler.Done() }

// Process produces the next sample.
func (w *Wav) Process() bae.Sample {
	return w.resampler.Process()
}
