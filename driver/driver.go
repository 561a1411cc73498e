// Package driver implements the sound collection that the engine's
// output drivers are built on. A driver owns a set of registered sounds,
// assigns each registration a unique id and pulls one finished sample per
// tick from every sound, mixing them down by summation.
package driver

import (
	"errors"
	"expvar"
	"fmt"

	"github.com/rs/xid"

	"github.com/isgasho/BAE"
	"github.com/isgasho/BAE/log"
	"github.com/isgasho/BAE/sound"
)

// ErrUnknownSound is returned when an id is not present in the registry.
var ErrUnknownSound = errors.New("driver: unknown sound id")

var (
	tickCounter   = expvar.NewInt("bae.driver.Ticks")
	sampleCounter = expvar.NewInt("bae.driver.Samples")
	soundGauge    = expvar.NewInt("bae.driver.Sounds")
)

// Registry is the reference sound.Driver implementation. Sounds are mixed
// in registration order. Registry is embedded by the concrete output
// drivers.
type Registry struct {
	logger log.Logger

	order  []string
	sounds map[string]*sound.Sound
}

// NewRegistry returns an empty sound registry.
func NewRegistry() *Registry {
	return &Registry{
		logger: log.GetLogger(),
		sounds: make(map[string]*sound.Sound),
	}
}

// AddSound admits a sound and returns the id assigned to this
// registration. Ids are unique per registration, not per sound.
func (r *Registry) AddSound(s *sound.Sound) string {
	id := xid.New().String()
	r.sounds[id] = s
	r.order = append(r.order, id)
	soundGauge.Set(int64(len(r.sounds)))
	r.logger.Debug("driver: added sound ", id)
	return id
}

// RemoveSound releases the sound registered under id. It returns
// ErrUnknownSound if the id was never assigned or already released.
func (r *Registry) RemoveSound(id string) error {
	if _, ok := r.sounds[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSound, id)
	}
	delete(r.sounds, id)
	for i := range r.order {
		if r.order[i] == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	soundGauge.Set(int64(len(r.sounds)))
	r.logger.Debug("driver: removed sound ", id)
	return nil
}

// Len returns the number of registered sounds.
func (r *Registry) Len() int { return len(r.sounds) }

// Output runs one tick: every registered sound processes a silent input
// and the outputs are summed.
func (r *Registry) Output() bae.Sample {
	var out bae.Sample
	for _, id := range r.order {
		out = out.Add(r.sounds[id].Process(bae.Sample{}))
	}
	tickCounter.Add(1)
	sampleCounter.Add(int64(len(r.order)))
	return out
}
