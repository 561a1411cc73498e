// Package mock provides scripted sources, transforms and drivers for
// tests of the sound graph and the drivers.
package mock

import (
	"fmt"

	"github.com/isgasho/BAE"
	"github.com/isgasho/BAE/sound"
)

// Source is a scripted source. It produces the values of Series one per
// call, then falls back to the constant Value, and counts its calls.
type Source struct {
	Value  bae.Sample
	Series []bae.Sample
	Calls  int
}

// NewConstSource returns a source producing the same value on both
// channels forever.
func NewConstSource(x float64) *Source {
	return &Source{Value: bae.StereoSample(x, x)}
}

// Process produces the next scripted value.
func (s *Source) Process() bae.Sample {
	defer func() { s.Calls++ }()
	if s.Calls < len(s.Series) {
		return s.Series[s.Calls]
	}
	return s.Value
}

// Transform is a recording transform. It scales its input by Gain and
// remembers every input it has seen.
type Transform struct {
	Gain   float64
	Inputs []bae.Sample
}

// NewTransform returns an identity recording transform.
func NewTransform() *Transform {
	return &Transform{Gain: 1}
}

// Process records and scales the input.
func (t *Transform) Process(x bae.Sample) bae.Sample {
	t.Inputs = append(t.Inputs, x)
	return x.Gain(t.Gain)
}

// Driver is an in-memory sound.Driver with deterministic ids and a
// scriptable RemoveSound failure.
type Driver struct {
	Sounds    map[string]*sound.Sound
	Removed   []string
	RemoveErr error

	next int
}

// NewDriver returns an empty mock driver.
func NewDriver() *Driver {
	return &Driver{Sounds: make(map[string]*sound.Sound)}
}

// AddSound admits a sound under the next sequential id.
func (d *Driver) AddSound(s *sound.Sound) string {
	d.next++
	id := fmt.Sprintf("mock-%d", d.next)
	d.Sounds[id] = s
	return id
}

// RemoveSound releases a sound, or fails with the scripted error.
func (d *Driver) RemoveSound(id string) error {
	if d.RemoveErr != nil {
		return d.RemoveErr
	}
	if _, ok := d.Sounds[id]; !ok {
		return fmt.Errorf("mock: unknown sound id %s", id)
	}
	delete(d.Sounds, id)
	d.Removed = append(d.Removed, id)
	return nil
}
