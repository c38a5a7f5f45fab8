package graphview

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"
)

// Sentinel errors reported by graph accessors. An identity captured
// earlier in a frame can legitimately outlive its element when the host
// mutates the graph mid-frame, so callers match with errors.Is.
var (
	ErrNodeNotFound = errors.New("node not found")
	ErrEdgeNotFound = errors.New("edge not found")
)

// WalkDirection selects which adjacency a Walk follows.
type WalkDirection int

const (
	// WalkBoth follows edges regardless of direction.
	WalkBoth WalkDirection = iota
	// WalkOut follows outgoing edges.
	WalkOut
	// WalkIn follows incoming edges.
	WalkIn
)

// EdgePair is the ordered endpoint pair parallel edges share.
type EdgePair struct {
	From, To int64
}

// Graph owns the displayable elements. Storage and adjacency sit on
// gonum multigraphs, which permit self-loops and parallel edges; on top
// of them the Graph keeps payload-carrying wrappers and stable
// insertion order, so iteration, hit-testing and walks stay
// deterministic across frames.
type Graph struct {
	directed bool
	dg       *multi.DirectedGraph
	ug       *multi.UndirectedGraph

	nodes map[int64]*Node
	edges map[int64]*Edge

	// Insertion order. Kept in lockstep with the maps.
	nodeIDs []int64
	edgeIDs []int64
}

// NewGraph creates an empty graph. Directedness is fixed for the
// graph's lifetime; it decides both arrowhead drawing and which
// adjacency walks follow.
func NewGraph(directed bool) *Graph {
	g := &Graph{
		directed: directed,
		nodes:    make(map[int64]*Node),
		edges:    make(map[int64]*Edge),
	}
	if directed {
		g.dg = multi.NewDirectedGraph()
	} else {
		g.ug = multi.NewUndirectedGraph()
	}
	return g
}

// Directed reports whether edges have direction.
func (g *Graph) Directed() bool { return g.directed }

// store returns the underlying gonum multigraph.
func (g *Graph) store() graph.Multigraph {
	if g.directed {
		return g.dg
	}
	return g.ug
}

// AddNode inserts a node carrying payload and returns its identity.
func (g *Graph) AddNode(payload any, opts ...Option) int64 {
	o := applyOptions(opts)

	var id int64
	if g.directed {
		id = g.dg.NewNode().ID()
	} else {
		id = g.ug.NewNode().ID()
	}
	n := newNode(id, payload, o)
	if g.directed {
		g.dg.AddNode(n)
	} else {
		g.ug.AddNode(n)
	}

	g.nodes[id] = n
	g.nodeIDs = append(g.nodeIDs, id)
	return id
}

// AddEdge inserts an edge between existing nodes and returns its
// identity. Self-loops (from == to) are allowed. The edge's sibling
// order is the number of edges already sharing the same ordered
// endpoint pair.
func (g *Graph) AddEdge(from, to int64, payload any, opts ...Option) (int64, error) {
	fn, ok := g.nodes[from]
	if !ok {
		return 0, fmt.Errorf("add edge: source node %d: %w", from, ErrNodeNotFound)
	}
	tn, ok := g.nodes[to]
	if !ok {
		return 0, fmt.Errorf("add edge: target node %d: %w", to, ErrNodeNotFound)
	}

	o := applyOptions(opts)
	order := 0
	for _, eid := range g.edgeIDs {
		s := g.edges[eid]
		if s.from.id == from && s.to.id == to {
			order++
		}
	}

	var id int64
	if g.directed {
		id = g.dg.NewLine(fn, tn).ID()
	} else {
		id = g.ug.NewLine(fn, tn).ID()
	}
	e := newEdge(id, fn, tn, order, payload, o)
	if g.directed {
		g.dg.SetLine(e)
	} else {
		g.ug.SetLine(e)
	}

	g.edges[id] = e
	g.edgeIDs = append(g.edgeIDs, id)
	return id, nil
}

// RemoveNode deletes a node and every edge touching it.
func (g *Graph) RemoveNode(id int64) error {
	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("remove node %d: %w", id, ErrNodeNotFound)
	}

	var incident []int64
	for _, eid := range g.edgeIDs {
		e := g.edges[eid]
		if e.from.id == id || e.to.id == id {
			incident = append(incident, eid)
		}
	}
	for _, eid := range incident {
		// Cannot fail: the edge was just enumerated.
		_ = g.RemoveEdge(eid)
	}

	if g.directed {
		g.dg.RemoveNode(id)
	} else {
		g.ug.RemoveNode(id)
	}
	delete(g.nodes, id)
	g.nodeIDs = removeID(g.nodeIDs, id)
	return nil
}

// RemoveEdge deletes an edge and renumbers its remaining siblings so
// their orders stay contiguous from zero.
func (g *Graph) RemoveEdge(id int64) error {
	e, ok := g.edges[id]
	if !ok {
		return fmt.Errorf("remove edge %d: %w", id, ErrEdgeNotFound)
	}

	if g.directed {
		g.dg.RemoveLine(e.from.id, e.to.id, id)
	} else {
		g.ug.RemoveLine(e.from.id, e.to.id, id)
	}
	delete(g.edges, id)
	g.edgeIDs = removeID(g.edgeIDs, id)

	for _, eid := range g.edgeIDs {
		s := g.edges[eid]
		if s.from.id == e.from.id && s.to.id == e.to.id && s.order > e.order {
			s.order--
		}
	}
	return nil
}

// Node returns the node with the given identity.
func (g *Graph) Node(id int64) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}
	return n, nil
}

// Edge returns the edge with the given identity.
func (g *Graph) Edge(id int64) (*Edge, error) {
	e, ok := g.edges[id]
	if !ok {
		return nil, fmt.Errorf("edge %d: %w", id, ErrEdgeNotFound)
	}
	return e, nil
}

// Endpoints returns an edge's source and target nodes.
func (g *Graph) Endpoints(id int64) (from, to *Node, err error) {
	e, err := g.Edge(id)
	if err != nil {
		return nil, nil, err
	}
	return e.from, e.to, nil
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodeIDs))
	for _, id := range g.nodeIDs {
		out = append(out, g.nodes[id])
	}
	return out
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edgeIDs))
	for _, id := range g.edgeIDs {
		out = append(out, g.edges[id])
	}
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodeIDs) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edgeIDs) }

// IncidentLines counts the edges feeding a node's radius growth:
// outgoing lines in a directed graph, all incident lines otherwise.
func (g *Graph) IncidentLines(id int64) int {
	count := 0
	it := g.store().From(id)
	for it.Next() {
		count += g.store().Lines(id, it.Node().ID()).Len()
	}
	return count
}

// EdgeMap groups edges by ordered endpoint pair, each group listed by
// sibling order. Self-loop groups have From == To.
func (g *Graph) EdgeMap() map[EdgePair][]*Edge {
	m := make(map[EdgePair][]*Edge)
	for _, id := range g.edgeIDs {
		e := g.edges[id]
		pair := EdgePair{From: e.from.id, To: e.to.id}
		m[pair] = append(m[pair], e)
	}
	return m
}

// Walk visits the graph breadth-first from root, following the given
// direction for at most depth hops, and returns the visited nodes and
// the edges traversed between them. The root is always first. Cycles
// are safe: every node and edge is reported at most once, including
// back-edges into already visited members. Pass DepthUnlimited to walk
// until the graph is exhausted; non-positive depths return just the
// root. Undirected graphs treat every direction as WalkBoth.
func (g *Graph) Walk(root int64, depth int, dir WalkDirection) (nodes, edges []int64, err error) {
	if _, ok := g.nodes[root]; !ok {
		return nil, nil, fmt.Errorf("walk from node %d: %w", root, ErrNodeNotFound)
	}

	nodes = []int64{root}
	visited := map[int64]bool{root: true}
	seenEdge := make(map[int64]bool)

	frontier := []int64{root}
	for hop := 0; hop < depth && len(frontier) > 0; hop++ {
		var next []int64
		for _, id := range frontier {
			for _, nb := range g.neighbors(id, dir) {
				for _, eid := range g.lineIDs(id, nb, dir) {
					if !seenEdge[eid] {
						seenEdge[eid] = true
						edges = append(edges, eid)
					}
				}
				if !visited[nb] {
					visited[nb] = true
					nodes = append(nodes, nb)
					next = append(next, nb)
				}
			}
		}
		frontier = next
	}
	return nodes, edges, nil
}

// neighbors returns the nodes adjacent to id in the walk direction, in
// insertion order. gonum answers the adjacency; the facade's node list
// fixes the ordering.
func (g *Graph) neighbors(id int64, dir WalkDirection) []int64 {
	var out []int64
	for _, nid := range g.nodeIDs {
		var adjacent bool
		if !g.directed {
			adjacent = g.ug.HasEdgeBetween(id, nid)
		} else {
			switch dir {
			case WalkOut:
				adjacent = g.dg.HasEdgeFromTo(id, nid)
			case WalkIn:
				adjacent = g.dg.HasEdgeFromTo(nid, id)
			default:
				adjacent = g.dg.HasEdgeBetween(id, nid)
			}
		}
		if adjacent {
			out = append(out, nid)
		}
	}
	return out
}

// lineIDs returns the edges between id and nb that the walk direction
// permits, in insertion order.
func (g *Graph) lineIDs(id, nb int64, dir WalkDirection) []int64 {
	set := make(map[int64]bool)
	collect := func(it graph.Lines) {
		for it.Next() {
			set[it.Line().ID()] = true
		}
	}
	if !g.directed {
		collect(g.ug.Lines(id, nb))
	} else {
		switch dir {
		case WalkOut:
			collect(g.dg.Lines(id, nb))
		case WalkIn:
			collect(g.dg.Lines(nb, id))
		default:
			collect(g.dg.Lines(id, nb))
			collect(g.dg.Lines(nb, id))
		}
	}
	if len(set) == 0 {
		return nil
	}

	out := make([]int64, 0, len(set))
	for _, eid := range g.edgeIDs {
		if set[eid] {
			out = append(out, eid)
		}
	}
	return out
}

// removeID deletes the first occurrence of id, preserving order.
func removeID(ids []int64, id int64) []int64 {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
