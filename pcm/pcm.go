// Package pcm converts between the engine's stereo samples and
// fixed-width little-endian PCM data, and provides a linear resampler for
// track playback at foreign rates.
package pcm

import (
	"errors"
	"fmt"

	"github.com/isgasho/BAE"
)

// BitDepth is the width of one encoded PCM value.
type BitDepth int

const (
	// BitDepth8 is unsigned 8 bit PCM.
	BitDepth8 = BitDepth(8)
	// BitDepth16 is signed 16 bit little-endian PCM.
	BitDepth16 = BitDepth(16)
	// BitDepth24 is signed 24 bit little-endian PCM.
	BitDepth24 = BitDepth(24)
)

var (
	// ErrUnsupportedBitDepth is returned for bit depths other than 8, 16
	// or 24.
	ErrUnsupportedBitDepth = errors.New("pcm: unsupported bit depth")
	// ErrTruncatedData is returned when encoded data does not hold a
	// whole number of stereo frames.
	ErrTruncatedData = errors.New("pcm: data is not a whole number of frames")
)

// bytes returns the number of bytes of one encoded value.
func (d BitDepth) bytes() int { return int(d) / 8 }

// scale returns the integer full-scale value for this bit depth.
func (d BitDepth) scale() float64 {
	switch d {
	case BitDepth8:
		return 1<<7 - 1
	case BitDepth16:
		return 1<<15 - 1
	case BitDepth24:
		return 1<<23 - 1
	}
	return 1
}

func (d BitDepth) valid() bool {
	switch d {
	case BitDepth8, BitDepth16, BitDepth24:
		return true
	}
	return false
}

// Marshal encodes samples as interleaved little-endian PCM. Channel
// values are clamped to [-1, 1]. 8 bit data is unsigned with a 0x80
// offset, matching the wav convention.
func Marshal(samples []bae.Sample, depth BitDepth) ([]byte, error) {
	if !depth.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, depth)
	}
	out := make([]byte, 0, len(samples)*2*depth.bytes())
	for _, s := range samples {
		out = appendValue(out, s.Left, depth)
		out = appendValue(out, s.Right, depth)
	}
	return out, nil
}

// Unmarshal decodes interleaved little-endian PCM into samples.
func Unmarshal(data []byte, depth BitDepth) ([]bae.Sample, error) {
	if !depth.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, depth)
	}
	frame := 2 * depth.bytes()
	if len(data)%frame != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedData, len(data))
	}
	samples := make([]bae.Sample, len(data)/frame)
	for i := range samples {
		off := i * frame
		samples[i] = bae.StereoSample(
			value(data[off:], depth),
			value(data[off+depth.bytes():], depth),
		)
	}
	return samples, nil
}

func appendValue(out []byte, x float64, depth BitDepth) []byte {
	if x > 1 {
		x = 1
	}
	if x < -1 {
		x = -1
	}
	v := int32(x * depth.scale())
	switch depth {
	case BitDepth8:
		return append(out, byte(v+1<<7))
	case BitDepth16:
		return append(out, byte(v), byte(v>>8))
	default:
		return append(out, byte(v), byte(v>>8), byte(v>>16))
	}
}

func value(data []byte, depth BitDepth) float64 {
	var v int32
	switch depth {
	case BitDepth8:
		v = int32(data[0]) - 1<<7
	case BitDepth16:
		v = int32(int16(uint16(data[0]) | uint16(data[1])<<8))
	default:
		v = int32(uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16)
		// sign-extend 24 bit
		if v&(1<<23) != 0 {
			v -= 1 << 24
		}
	}
	return float64(v) / depth.scale()
}
