// Package sound implements the signal-routing core of the engine: nodes
// combining a source, a transform and a combinator; the directed graph
// that owns them; the per-tick evaluation order; and the Sound facade
// that drivers pull finished samples from.
//
// The model is single-threaded and cooperative: one Process call per
// output sample, driven externally. Topology edits must be serialized
// against Process by the caller.
package sound

import (
	"github.com/isgasho/BAE"
	"github.com/isgasho/BAE/log"
)

// Driver is a collection of sounds that periodically pulls finished
// samples from each registered sound. Ids are stable and uniquely
// assigned per registration.
type Driver interface {
	AddSound(s *Sound) string
	RemoveSound(id string) error
}

// Sound is the public per-instance facade. It owns one graph, tracks the
// mute and pause flags and manages registration with at most one driver
// at a time.
type Sound struct {
	graph  *Graph
	logger log.Logger

	driver Driver
	id     string

	muted  bool
	paused bool
}

// NewSound creates a sound whose graph sentinels are seeded with the
// provided linear gain factors.
func NewSound(inputGain, outputGain float64) *Sound {
	return &Sound{
		graph:  NewGraph(inputGain, outputGain),
		logger: log.GetLogger(),
	}
}

// Graph returns the graph owned by this sound.
func (s *Sound) Graph() *Graph { return s.graph }

// InputGain returns the id of the graph's input-gain sentinel.
func (s *Sound) InputGain() NodeID { return s.graph.InputGain() }

// OutputGain returns the id of the graph's output-gain sentinel.
func (s *Sound) OutputGain() NodeID { return s.graph.OutputGain() }

// TogglePause flips the pause flag. While paused, Process returns silence
// without touching any node: internal state is frozen, not silenced and
// running.
func (s *Sound) TogglePause() { s.paused = !s.paused }

// Paused reports whether the sound is paused.
func (s *Sound) Paused() bool { return s.paused }

// ToggleMute flips the mute flag. While muted all nodes still run every
// tick, so envelopes and filter history keep advancing; only the returned
// sample is forced to silence.
func (s *Sound) ToggleMute() { s.muted = !s.muted }

// Muted reports whether the sound is muted.
func (s *Sound) Muted() bool { return s.muted }

// Process runs one tick. The input primes the input-gain sentinel, every
// node in the evaluation order processes exactly once and fans its output
// out to its direct successors, and the output-gain sentinel's output is
// the result. The full order runs on every call; there is no
// short-circuiting of untouched subgraphs.
func (s *Sound) Process(input bae.Sample) bae.Sample {
	if s.paused {
		return bae.Sample{}
	}

	var out bae.Sample
	s.graph.Node(s.graph.inputGain).PrimeInput(input)

	for _, id := range s.graph.order {
		out = s.graph.Node(id).Process()
		for _, to := range s.graph.succ[id] {
			s.graph.Node(to).PrimeInput(out)
		}
	}

	if s.muted {
		return bae.Sample{}
	}
	return out
}

// Register registers the sound with a driver, unregistering from any
// previous driver first. The sound stores the id assigned by the driver.
func (s *Sound) Register(d Driver) {
	s.Unregister()
	s.driver = d
	s.id = d.AddSound(s)
}

// Unregister releases the sound's registration. A driver that no longer
// knows the id is logged and otherwise ignored; the local id and driver
// reference are always cleared. Safe to call when not registered.
func (s *Sound) Unregister() {
	if s.driver == nil {
		return
	}
	if err := s.driver.RemoveSound(s.id); err != nil {
		s.logger.Info("unregister sound: ", err)
	}
	s.driver = nil
	s.id = ""
}

// Registered reports whether the sound is currently registered with a
// driver.
func (s *Sound) Registered() bool { return s.driver != nil }

// ID returns the id assigned by the current driver, or an empty string
// when unregistered.
func (s *Sound) ID() string { return s.id }
