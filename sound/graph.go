package sound

import (
	"fmt"
	"sort"

	"github.com/isgasho/BAE/modifier"
)

// NodeID is a stable handle to a node owned by a graph. Ids are never
// reused while the graph is alive. All mutation goes through the graph,
// which is the sole owner of its nodes.
type NodeID int

// Graph is a directed graph of nodes with summed fan-in and broadcast
// fan-out. Two sentinel nodes bound its external interface: every graph
// permanently owns an input-gain and an output-gain node. The evaluation
// order is recomputed eagerly on every edge mutation, so a tick never
// pays traversal-order cost.
type Graph struct {
	nodes map[NodeID]*Node
	edges map[NodeID]map[NodeID]struct{}
	order []NodeID
	succ  map[NodeID][]NodeID

	inputGain  NodeID
	outputGain NodeID
	next       NodeID
}

// NewGraph creates a graph with its two gain sentinels seeded with the
// provided linear gain factors.
func NewGraph(inputGain, outputGain float64) *Graph {
	g := &Graph{
		nodes: make(map[NodeID]*Node),
		edges: make(map[NodeID]map[NodeID]struct{}),
	}
	g.inputGain = g.AddNode(TransformNode(modifier.NewGain(inputGain)))
	g.outputGain = g.AddNode(TransformNode(modifier.NewGain(outputGain)))
	g.recompute()
	return g
}

// InputGain returns the id of the input-gain sentinel.
func (g *Graph) InputGain() NodeID { return g.inputGain }

// OutputGain returns the id of the output-gain sentinel.
func (g *Graph) OutputGain() NodeID { return g.outputGain }

// AddNode adds a node to the graph and returns its id.
func (g *Graph) AddNode(n *Node) NodeID {
	id := g.next
	g.next++
	g.nodes[id] = n
	g.edges[id] = make(map[NodeID]struct{})
	return id
}

// Node returns the node for the given id. It panics if the id is unknown.
func (g *Graph) Node(id NodeID) *Node {
	n, ok := g.nodes[id]
	if !ok {
		panic(fmt.Sprintf("sound: unknown node %d", id))
	}
	return n
}

// RemoveNode removes a node and all of its incident edges, then
// recomputes the evaluation order. It panics if the id is unknown or
// names a sentinel.
func (g *Graph) RemoveNode(id NodeID) {
	g.Node(id)
	if id == g.inputGain || id == g.outputGain {
		panic(fmt.Sprintf("sound: cannot remove sentinel node %d", id))
	}
	delete(g.nodes, id)
	delete(g.edges, id)
	for _, succ := range g.edges {
		delete(succ, id)
	}
	g.recompute()
}

// Connect inserts the directed edge from -> to and recomputes the
// evaluation order. Inserting an existing edge is a no-op apart from the
// recomputation. It panics if either id is unknown.
func (g *Graph) Connect(from, to NodeID) {
	g.Node(from)
	g.Node(to)
	g.edges[from][to] = struct{}{}
	g.recompute()
}

// Disconnect removes the directed edge from -> to if present and
// recomputes the evaluation order. Removing an absent edge is a silent
// no-op. It panics if either id is unknown.
func (g *Graph) Disconnect(from, to NodeID) {
	g.Node(from)
	g.Node(to)
	delete(g.edges[from], to)
	g.recompute()
}

// Successors returns the direct successors of a node in ascending id
// order. It panics if the id is unknown.
func (g *Graph) Successors(id NodeID) []NodeID {
	g.Node(id)
	succ := make([]NodeID, len(g.succ[id]))
	copy(succ, g.succ[id])
	return succ
}

// Order returns a copy of the cached evaluation order.
func (g *Graph) Order() []NodeID {
	order := make([]NodeID, len(g.order))
	copy(order, g.order)
	return order
}

// recompute rebuilds the evaluation order from the current topology.
//
// The order is seeded with every node that has no incoming edges, in
// ascending id order, and grown as a queue: each scheduled node appends
// all of its direct successors, and after each position the already
// scanned prefix is swept so that only a node's first occurrence
// survives. The sentinels are then stripped and forced to the front and
// back. A node with no path from a zero-in-degree node (a pure cycle) is
// never scheduled; its output is silently never produced. That is a
// documented property of the engine, not a defect to correct here.
func (g *Graph) recompute() {
	g.succ = make(map[NodeID][]NodeID, len(g.edges))
	for from, succ := range g.edges {
		out := make([]NodeID, 0, len(succ))
		for to := range succ {
			out = append(out, to)
		}
		sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
		g.succ[from] = out
	}

	order := g.order[:0]

	indeg := make(map[NodeID]int, len(g.nodes))
	for _, succ := range g.edges {
		for to := range succ {
			indeg[to]++
		}
	}
	for _, id := range g.sortedIDs() {
		if indeg[id] == 0 {
			order = append(order, id)
		}
	}

	for i := 0; i < len(order); i++ {
		order = append(order, g.succ[order[i]]...)
		for j := 0; j < i; j++ {
			order = removeDups(order, j)
		}
	}

	kept := order[:0]
	for _, id := range order {
		if id != g.inputGain && id != g.outputGain {
			kept = append(kept, id)
		}
	}

	g.order = make([]NodeID, 0, len(kept)+2)
	g.order = append(g.order, g.inputGain)
	g.order = append(g.order, kept...)
	g.order = append(g.order, g.outputGain)
}

// removeDups drops every occurrence of v[whitelist] found after the
// whitelist position.
func removeDups(v []NodeID, whitelist int) []NodeID {
	i := whitelist + 1
	for i < len(v) {
		if v[i] == v[whitelist] {
			v = append(v[:i], v[i+1:]...)
		} else {
			i++
		}
	}
	return v
}

func (g *Graph) sortedIDs() []NodeID {
	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
