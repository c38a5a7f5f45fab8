package graphview_test

import (
	"errors"
	"testing"

	"github.com/blitzar-tech/graphview"
)

func TestAddEdgeSiblingOrders(t *testing.T) {
	g := graphview.NewGraph(true)
	a := g.AddNode(nil)
	b := g.AddNode(nil)

	var ab []int64
	for i := 0; i < 3; i++ {
		id, err := g.AddEdge(a, b, nil)
		if err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
		ab = append(ab, id)
	}
	ba, err := g.AddEdge(b, a, nil)
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	loop, err := g.AddEdge(a, a, nil)
	if err != nil {
		t.Fatalf("AddEdge self-loop: %v", err)
	}

	for i, id := range ab {
		e, _ := g.Edge(id)
		if e.Order() != i {
			t.Errorf("Expected sibling order %d, got %d", i, e.Order())
		}
	}

	// The reverse pair and the self-loop are separate groups, so both
	// start counting from zero.
	if e, _ := g.Edge(ba); e.Order() != 0 {
		t.Errorf("Expected reverse edge order 0, got %d", e.Order())
	}
	if e, _ := g.Edge(loop); e.Order() != 0 {
		t.Errorf("Expected self-loop order 0, got %d", e.Order())
	}
}

func TestRemoveEdgeRenumbersSiblings(t *testing.T) {
	g := graphview.NewGraph(true)
	a := g.AddNode(nil)
	b := g.AddNode(nil)

	e0, _ := g.AddEdge(a, b, nil)
	e1, _ := g.AddEdge(a, b, nil)
	e2, _ := g.AddEdge(a, b, nil)

	if err := g.RemoveEdge(e1); err != nil {
		t.Fatalf("RemoveEdge: %v", err)
	}

	if e, _ := g.Edge(e0); e.Order() != 0 {
		t.Errorf("Expected first sibling to keep order 0, got %d", e.Order())
	}
	if e, _ := g.Edge(e2); e.Order() != 1 {
		t.Errorf("Expected last sibling to slide down to order 1, got %d", e.Order())
	}
	if g.EdgeCount() != 2 {
		t.Errorf("Expected 2 edges, got %d", g.EdgeCount())
	}
}

func TestRemoveNodeCascades(t *testing.T) {
	g := graphview.NewGraph(true)
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)

	ab, _ := g.AddEdge(a, b, nil)
	ba, _ := g.AddEdge(b, a, nil)
	loop, _ := g.AddEdge(b, b, nil)
	bc, _ := g.AddEdge(b, c, nil)

	if err := g.RemoveNode(b); err != nil {
		t.Fatalf("RemoveNode: %v", err)
	}

	if g.NodeCount() != 2 {
		t.Errorf("Expected 2 nodes, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 0 {
		t.Errorf("Expected all incident edges removed, got %d", g.EdgeCount())
	}
	for _, id := range []int64{ab, ba, loop, bc} {
		if _, err := g.Edge(id); !errors.Is(err, graphview.ErrEdgeNotFound) {
			t.Errorf("Expected ErrEdgeNotFound for edge %d, got %v", id, err)
		}
	}
}

func TestNotFoundErrors(t *testing.T) {
	g := graphview.NewGraph(true)
	a := g.AddNode(nil)

	if _, err := g.Node(99); !errors.Is(err, graphview.ErrNodeNotFound) {
		t.Errorf("Node: expected ErrNodeNotFound, got %v", err)
	}
	if _, err := g.Edge(99); !errors.Is(err, graphview.ErrEdgeNotFound) {
		t.Errorf("Edge: expected ErrEdgeNotFound, got %v", err)
	}
	if _, _, err := g.Endpoints(99); !errors.Is(err, graphview.ErrEdgeNotFound) {
		t.Errorf("Endpoints: expected ErrEdgeNotFound, got %v", err)
	}
	if _, err := g.AddEdge(a, 99, nil); !errors.Is(err, graphview.ErrNodeNotFound) {
		t.Errorf("AddEdge target: expected ErrNodeNotFound, got %v", err)
	}
	if _, err := g.AddEdge(99, a, nil); !errors.Is(err, graphview.ErrNodeNotFound) {
		t.Errorf("AddEdge source: expected ErrNodeNotFound, got %v", err)
	}
	if err := g.RemoveNode(99); !errors.Is(err, graphview.ErrNodeNotFound) {
		t.Errorf("RemoveNode: expected ErrNodeNotFound, got %v", err)
	}
	if err := g.RemoveEdge(99); !errors.Is(err, graphview.ErrEdgeNotFound) {
		t.Errorf("RemoveEdge: expected ErrEdgeNotFound, got %v", err)
	}
	if _, _, err := g.Walk(99, 1, graphview.WalkOut); !errors.Is(err, graphview.ErrNodeNotFound) {
		t.Errorf("Walk: expected ErrNodeNotFound, got %v", err)
	}
}

func TestEndpoints(t *testing.T) {
	g := graphview.NewGraph(true)
	a := g.AddNode("src")
	b := g.AddNode("dst")
	id, _ := g.AddEdge(a, b, nil)

	from, to, err := g.Endpoints(id)
	if err != nil {
		t.Fatalf("Endpoints: %v", err)
	}
	if from.ID() != a || to.ID() != b {
		t.Errorf("Expected endpoints %d -> %d, got %d -> %d", a, b, from.ID(), to.ID())
	}
	if from.Payload != "src" || to.Payload != "dst" {
		t.Errorf("Expected payloads to ride along, got %v, %v", from.Payload, to.Payload)
	}
}

func TestWalkDirectedCycle(t *testing.T) {
	g := graphview.NewGraph(true)
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	ab, _ := g.AddEdge(a, b, nil)
	bc, _ := g.AddEdge(b, c, nil)
	ca, _ := g.AddEdge(c, a, nil)

	tests := []struct {
		name      string
		depth     int
		dir       graphview.WalkDirection
		wantNodes []int64
		wantEdges []int64
	}{
		{"one hop out", 1, graphview.WalkOut, []int64{a, b}, []int64{ab}},
		{"two hops out", 2, graphview.WalkOut, []int64{a, b, c}, []int64{ab, bc}},
		{"unlimited closes the cycle", graphview.DepthUnlimited, graphview.WalkOut,
			[]int64{a, b, c}, []int64{ab, bc, ca}},
		{"one hop in", 1, graphview.WalkIn, []int64{a, c}, []int64{ca}},
		{"zero depth", 0, graphview.WalkOut, []int64{a}, nil},
	}
	for _, tt := range tests {
		nodes, edges, err := g.Walk(a, tt.depth, tt.dir)
		if err != nil {
			t.Fatalf("%s: Walk: %v", tt.name, err)
		}
		if !equalIDs(nodes, tt.wantNodes) {
			t.Errorf("%s: nodes: got %v, want %v", tt.name, nodes, tt.wantNodes)
		}
		if !equalIDs(edges, tt.wantEdges) {
			t.Errorf("%s: edges: got %v, want %v", tt.name, edges, tt.wantEdges)
		}
	}
}

func TestWalkUndirected(t *testing.T) {
	g := graphview.NewGraph(false)
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	ab, _ := g.AddEdge(a, b, nil)
	bc, _ := g.AddEdge(b, c, nil)

	// Direction is ignored without edge direction; both arms of the
	// chain are one hop from the middle.
	nodes, edges, err := g.Walk(b, 1, graphview.WalkOut)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if !equalIDs(nodes, []int64{b, a, c}) {
		t.Errorf("nodes: got %v, want [%d %d %d]", nodes, b, a, c)
	}
	if !equalIDs(edges, []int64{ab, bc}) {
		t.Errorf("edges: got %v, want [%d %d]", edges, ab, bc)
	}
}

func TestWalkParallelEdges(t *testing.T) {
	g := graphview.NewGraph(true)
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	e0, _ := g.AddEdge(a, b, nil)
	e1, _ := g.AddEdge(a, b, nil)

	_, edges, err := g.Walk(a, 1, graphview.WalkOut)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if !equalIDs(edges, []int64{e0, e1}) {
		t.Errorf("Expected both parallel edges, got %v", edges)
	}
}

func TestEdgeMap(t *testing.T) {
	g := graphview.NewGraph(true)
	a := g.AddNode(nil)
	b := g.AddNode(nil)

	g.AddEdge(a, b, nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(b, a, nil)
	g.AddEdge(a, a, nil)

	m := g.EdgeMap()
	if len(m) != 3 {
		t.Fatalf("Expected 3 endpoint groups, got %d", len(m))
	}

	group := m[graphview.EdgePair{From: a, To: b}]
	if len(group) != 2 {
		t.Fatalf("Expected 2 parallel edges, got %d", len(group))
	}
	for i, e := range group {
		if e.Order() != i {
			t.Errorf("Expected group listed by sibling order, got order %d at %d", e.Order(), i)
		}
	}
	if len(m[graphview.EdgePair{From: b, To: a}]) != 1 {
		t.Error("Expected the reverse pair in its own group")
	}
	if len(m[graphview.EdgePair{From: a, To: a}]) != 1 {
		t.Error("Expected the self-loop in its own group")
	}
}

func TestIncidentLines(t *testing.T) {
	g := graphview.NewGraph(true)
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(a, b, nil)
	g.AddEdge(a, c, nil)
	g.AddEdge(b, a, nil)

	// Directed graphs count outgoing lines only.
	if got := g.IncidentLines(a); got != 3 {
		t.Errorf("Expected 3 outgoing lines for a, got %d", got)
	}
	if got := g.IncidentLines(b); got != 1 {
		t.Errorf("Expected 1 outgoing line for b, got %d", got)
	}
	if got := g.IncidentLines(c); got != 0 {
		t.Errorf("Expected 0 outgoing lines for c, got %d", got)
	}

	ug := graphview.NewGraph(false)
	ua := ug.AddNode(nil)
	ub := ug.AddNode(nil)
	uc := ug.AddNode(nil)
	ug.AddEdge(ua, ub, nil)
	ug.AddEdge(uc, ua, nil)

	// Undirected graphs count every incident line.
	if got := ug.IncidentLines(ua); got != 2 {
		t.Errorf("Expected 2 incident lines for a, got %d", got)
	}
	if got := ug.IncidentLines(ub); got != 1 {
		t.Errorf("Expected 1 incident line for b, got %d", got)
	}
}

func TestInsertionOrderSurvivesRemoval(t *testing.T) {
	g := graphview.NewGraph(false)
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)

	if err := g.RemoveNode(b); err != nil {
		t.Fatalf("RemoveNode: %v", err)
	}
	d := g.AddNode(nil)

	var got []int64
	for _, n := range g.Nodes() {
		got = append(got, n.ID())
	}
	if !equalIDs(got, []int64{a, c, d}) {
		t.Errorf("Expected insertion order [%d %d %d], got %v", a, c, d, got)
	}
}

func equalIDs(got, want []int64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
