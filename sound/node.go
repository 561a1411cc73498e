package sound

import "github.com/isgasho/BAE"

// Source produces one sample per tick from internal state only.
// Implementations may be stateful and are called exactly once per tick.
type Source interface {
	Process() bae.Sample
}

// Transform consumes the node's accumulated input and produces one sample
// per tick. Implementations may be stateful and are called exactly once
// per tick.
type Transform interface {
	Process(x bae.Sample) bae.Sample
}

// Combinator merges the per-tick outputs of a node's source and transform
// into the node's single output.
type Combinator func(src, tr bae.Sample) bae.Sample

// Combinator presets. Multiply is the default and yields amplitude
// modulation; the passthrough variants make a node source-only or
// transform-only.
var (
	Multiply      Combinator = func(src, tr bae.Sample) bae.Sample { return src.Mul(tr) }
	SourcePass    Combinator = func(src, _ bae.Sample) bae.Sample { return src }
	TransformPass Combinator = func(_, tr bae.Sample) bae.Sample { return tr }
)

// EmptySource is the no-op source. It always produces silence.
type EmptySource struct{}

// Process returns silence.
func (EmptySource) Process() bae.Sample { return bae.Sample{} }

// EmptyTransform is the no-op transform. It returns its input unchanged.
type EmptyTransform struct{}

// Process returns x unchanged.
func (EmptyTransform) Process(x bae.Sample) bae.Sample { return x }

// Node wraps one source, one transform and the combinator that merges
// their outputs. Inbound samples accumulate between ticks, so fan-in from
// several predecessors sums naturally. A Node handle shares its mutable
// state: it is never copied with independent state.
type Node struct {
	source    Source
	transform Transform
	combine   Combinator
	input     bae.Sample
}

// NewNode creates a node from a source, a transform and a combinator.
func NewNode(src Source, tr Transform, comb Combinator) *Node {
	return &Node{
		source:    src,
		transform: tr,
		combine:   comb,
	}
}

// SourceNode creates a source-only node: the transform is empty and the
// combinator passes the source output through.
func SourceNode(src Source) *Node {
	return NewNode(src, EmptyTransform{}, SourcePass)
}

// TransformNode creates a transform-only node: the source is empty and the
// combinator passes the transform output through.
func TransformNode(tr Transform) *Node {
	return NewNode(EmptySource{}, tr, TransformPass)
}

// Source returns the node's source.
func (n *Node) Source() Source { return n.source }

// Transform returns the node's transform.
func (n *Node) Transform() Transform { return n.transform }

// PrimeInput adds x into the node's input accumulator. It never replaces:
// contributions from multiple predecessors within one tick must sum.
func (n *Node) PrimeInput(x bae.Sample) {
	n.input = n.input.Add(x)
}

// Process runs the source and the transform once, merges their outputs
// with the combinator and resets the input accumulator to silence.
// It must be called at most once per tick; the evaluation order enforces
// this for nodes owned by a graph.
func (n *Node) Process() bae.Sample {
	y := n.combine(n.source.Process(), n.transform.Process(n.input))
	n.input = bae.Sample{}
	return y
}
