package graphview

import (
	"math"

	"gonum.org/v1/gonum/graph"
)

// Edge display defaults.
const (
	DefaultEdgeWidth     float32 = 2
	DefaultEdgeTipSize   float32 = 15
	DefaultEdgeTipAngle  float32 = math.Pi * 2 / 30
	DefaultEdgeCurveSize float32 = 20
)

// Edge is a displayable graph line. Parallel edges between the same
// ordered endpoint pair are told apart by Order: the first inserted
// gets 0, the next 1, and so on. Orders stay contiguous when siblings
// are removed.
type Edge struct {
	id    int64
	from  *Node
	to    *Node
	order int
	opts  options

	Payload any
	Label   string

	// Display parameters, in graph-space units.
	Width     float32
	TipSize   float32
	TipAngle  float32
	CurveSize float32

	selected bool
}

// newEdge builds an edge from insertion options.
func newEdge(id int64, from, to *Node, order int, payload any, o options) *Edge {
	return &Edge{
		id:        id,
		from:      from,
		to:        to,
		order:     order,
		opts:      o,
		Payload:   payload,
		Label:     GetOpt(o, OptLabel),
		Width:     GetOpt(o, OptEdgeWidth),
		TipSize:   GetOpt(o, OptEdgeTipSize),
		TipAngle:  GetOpt(o, OptEdgeTipAngle),
		CurveSize: GetOpt(o, OptEdgeCurveSize),
		selected:  GetOpt(o, OptSelected),
	}
}

// ID returns the edge's graph identity.
// It satisfies gonum's graph.Line.
func (e *Edge) ID() int64 { return e.id }

// From returns the source node.
func (e *Edge) From() graph.Node { return e.from }

// To returns the target node.
func (e *Edge) To() graph.Node { return e.to }

// Source returns the source node without the interface indirection.
func (e *Edge) Source() *Node { return e.from }

// Target returns the target node without the interface indirection.
func (e *Edge) Target() *Node { return e.to }

// ReversedLine returns a copy of the edge with swapped endpoints.
// gonum uses it to store undirected adjacency; the copy shares the
// edge's identity.
func (e *Edge) ReversedLine() graph.Line {
	r := *e
	r.from, r.to = e.to, e.from
	return &r
}

// Order returns the edge's rank among parallel edges that share its
// ordered endpoint pair.
func (e *Edge) Order() int { return e.order }

// Selected reports whether the edge is selected.
func (e *Edge) Selected() bool { return e.selected }

// SetSelected marks or unmarks the edge as selected.
func (e *Edge) SetSelected(selected bool) { e.selected = selected }

// loop reports whether the edge connects a node to itself.
func (e *Edge) loop() bool { return e.from.id == e.to.id }
