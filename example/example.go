// Package example provides ready-made sound graphs and render helpers
// demonstrating how the engine's pieces fit together.
package example

import (
	"time"

	"github.com/isgasho/BAE"
	"github.com/isgasho/BAE/driver/mp3driver"
	"github.com/isgasho/BAE/driver/portaudio"
	"github.com/isgasho/BAE/driver/wavdriver"
	"github.com/isgasho/BAE/generator"
	"github.com/isgasho/BAE/modifier"
	"github.com/isgasho/BAE/sound"
)

// Chord builds a sound playing a minor triad: three sine sources fanned
// into a single gain node so their contributions sum.
func Chord(root float64) *sound.Sound {
	s := sound.NewSound(1, 1)
	g := s.Graph()

	sum := g.AddNode(sound.TransformNode(modifier.NewGain(1.0 / 3)))
	for _, ratio := range []float64{1, 6.0 / 5, 3.0 / 2} {
		osc := g.AddNode(sound.SourceNode(generator.NewSine(root*ratio, bae.SampleRate)))
		g.Connect(osc, sum)
	}
	g.Connect(sum, g.OutputGain())

	return s
}

// TremoloSine builds a sound whose sine carrier is amplitude-modulated by
// a slow triangle wave through the multiply combinator.
func TremoloSine(freq float64) *sound.Sound {
	s := sound.NewSound(1, 1)
	g := s.Graph()

	carrier := sound.NewNode(
		generator.NewSine(freq, bae.SampleRate),
		modifier.NewGain(1),
		sound.Multiply,
	)
	lfo := g.AddNode(sound.SourceNode(generator.NewTriangle(4, bae.SampleRate)))
	mod := g.AddNode(carrier)

	g.Connect(lfo, mod)
	g.Connect(mod, g.OutputGain())

	return s
}

// Pluck builds a noise burst shaped by an envelope and a low-pass
// filter, approximating a plucked string.
func Pluck() *sound.Sound {
	s := sound.NewSound(1, 1)
	g := s.Graph()

	noise := g.AddNode(sound.SourceNode(generator.NewNoise()))
	env := g.AddNode(sound.TransformNode(modifier.NewADSR(
		2*time.Millisecond, 80*time.Millisecond, -12, 300*time.Millisecond, bae.SampleRate,
	)))
	lp := g.AddNode(sound.TransformNode(modifier.NewLowPass(1200, 0.2, bae.SampleRate)))

	g.Connect(noise, env)
	g.Connect(env, lp)
	g.Connect(lp, g.OutputGain())

	return s
}

// RenderWav renders a sound to a 16 bit wav file.
func RenderWav(path string, s *sound.Sound, d time.Duration) error {
	drv := wavdriver.New(path, bae.SampleRate)
	s.Register(drv)
	defer s.Unregister()
	return drv.Render(int(d.Seconds() * bae.SampleRate))
}

// RenderMP3 renders a sound to an mp3 file.
func RenderMP3(path string, s *sound.Sound, d time.Duration) error {
	drv := mp3driver.New(path, bae.SampleRate)
	s.Register(drv)
	defer s.Unregister()
	return drv.Render(int(d.Seconds() * bae.SampleRate))
}

// Play plays a sound on the default output device for the given
// duration.
func Play(s *sound.Sound, d time.Duration) error {
	drv := portaudio.New(bae.SampleRate)
	s.Register(drv)
	defer s.Unregister()

	if err := drv.Start(); err != nil {
		return err
	}
	select {
	case err := <-drv.Errc():
		drv.Stop()
		return err
	case <-time.After(d):
	}
	return drv.Stop()
}
