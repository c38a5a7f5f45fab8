package graphview_test

import (
	"testing"

	"github.com/blitzar-tech/graphview"
)

func TestNodeAtScreenPos(t *testing.T) {
	g := graphview.NewGraph(true)
	a := g.AddNode(nil, graphview.WithLocation(graphview.Vec2{X: 100, Y: 100}), graphview.WithRadius(10))
	g.AddNode(nil, graphview.WithLocation(graphview.Vec2{X: 105, Y: 100}), graphview.WithRadius(10))

	meta := graphview.NewMetadata()
	meta.Zoom = 2
	meta.Pan = graphview.Vec2{X: 10, Y: 0}
	canvas := graphview.Rect{W: 800, H: 600}
	comp := graphview.ComputeState(g, &meta,
		graphview.NewSettingsInteraction(), graphview.NewSettingsStyle())

	// Graph point (103, 100) is covered by both circles; insertion
	// order breaks the tie.
	screen := meta.GraphToScreen(canvas, graphview.Vec2{X: 103, Y: 100})
	n := graphview.NodeAtScreenPos(g, comp, &meta, canvas, screen)
	if n == nil || n.ID() != a {
		t.Errorf("Expected the first inserted node, got %v", n)
	}

	screen = meta.GraphToScreen(canvas, graphview.Vec2{X: 200, Y: 200})
	if n := graphview.NodeAtScreenPos(g, comp, &meta, canvas, screen); n != nil {
		t.Errorf("Expected a miss on empty space, got node %d", n.ID())
	}
}

func TestEdgeAtScreenPosStraight(t *testing.T) {
	g := graphview.NewGraph(true)
	a := g.AddNode(nil)
	b := g.AddNode(nil, graphview.WithLocation(graphview.Vec2{X: 100, Y: 0}))
	id, _ := g.AddEdge(a, b, nil)

	meta := graphview.NewMetadata()
	canvas := graphview.Rect{W: 800, H: 600}
	style := graphview.NewSettingsStyle()
	comp := graphview.ComputeState(g, &meta, graphview.NewSettingsInteraction(), style)

	tests := []struct {
		name string
		pos  graphview.Vec2
		hit  bool
	}{
		{"on the line", graphview.Vec2{X: 50, Y: 1.5}, true},
		{"just outside the stroke", graphview.Vec2{X: 50, Y: 3}, false},
		{"beyond the endpoint", graphview.Vec2{X: 120, Y: 0}, false},
	}
	for _, tt := range tests {
		e := graphview.EdgeAtScreenPos(g, comp, &meta, style, canvas, tt.pos)
		if tt.hit && (e == nil || e.ID() != id) {
			t.Errorf("%s: expected a hit, got %v", tt.name, e)
		}
		if !tt.hit && e != nil {
			t.Errorf("%s: expected a miss, got edge %d", tt.name, e.ID())
		}
	}
}

func TestEdgeAtScreenPosSiblings(t *testing.T) {
	g := graphview.NewGraph(true)
	a := g.AddNode(nil)
	b := g.AddNode(nil, graphview.WithLocation(graphview.Vec2{X: 100, Y: 0}))
	e0, _ := g.AddEdge(a, b, nil)
	e1, _ := g.AddEdge(a, b, nil)

	meta := graphview.NewMetadata()
	canvas := graphview.Rect{W: 800, H: 600}
	style := graphview.NewSettingsStyle()
	comp := graphview.ComputeState(g, &meta, graphview.NewSettingsInteraction(), style)

	// Sibling orders bow at different offsets, so each curve's apex
	// resolves to exactly one edge. Order 0 peaks at (51, 10), order 1
	// at (51, 20).
	if e := graphview.EdgeAtScreenPos(g, comp, &meta, style, canvas, graphview.Vec2{X: 51, Y: 10}); e == nil || e.ID() != e0 {
		t.Errorf("Expected the inner sibling at its apex, got %v", e)
	}
	if e := graphview.EdgeAtScreenPos(g, comp, &meta, style, canvas, graphview.Vec2{X: 51, Y: 20}); e == nil || e.ID() != e1 {
		t.Errorf("Expected the outer sibling at its apex, got %v", e)
	}
	if e := graphview.EdgeAtScreenPos(g, comp, &meta, style, canvas, graphview.Vec2{X: 51, Y: 30}); e != nil {
		t.Errorf("Expected a miss above both curves, got edge %d", e.ID())
	}
	// Both siblings bow away from the straight chord, so its midpoint
	// belongs to neither.
	if e := graphview.EdgeAtScreenPos(g, comp, &meta, style, canvas, graphview.Vec2{X: 51}); e != nil {
		t.Errorf("Expected the chord midpoint to miss, got edge %d", e.ID())
	}
}

func TestEdgeAtScreenPosLoop(t *testing.T) {
	g := graphview.NewGraph(true)
	a := g.AddNode(nil, graphview.WithRadius(5))
	id, _ := g.AddEdge(a, a, nil)

	meta := graphview.NewMetadata()
	canvas := graphview.Rect{W: 800, H: 600}
	// Keep the radius at its base so the loop geometry stays exact.
	style := graphview.NewSettingsStyle().WithEdgeRadiusWeight(0)
	comp := graphview.ComputeState(g, &meta, graphview.NewSettingsInteraction(), style)

	// The loop arcs above the node and peaks near (0, -12).
	if e := graphview.EdgeAtScreenPos(g, comp, &meta, style, canvas, graphview.Vec2{Y: -12}); e == nil || e.ID() != id {
		t.Errorf("Expected the loop at its apex, got %v", e)
	}
	if e := graphview.EdgeAtScreenPos(g, comp, &meta, style, canvas, graphview.Vec2{}); e != nil {
		t.Error("Expected the node center outside the loop stroke")
	}
	if e := graphview.EdgeAtScreenPos(g, comp, &meta, style, canvas, graphview.Vec2{Y: -20}); e != nil {
		t.Error("Expected a miss above the loop")
	}
}

func BenchmarkNodeAtScreenPos(b *testing.B) {
	g := graphview.NewGraph(true)
	for i := 0; i < 1000; i++ {
		g.AddNode(nil, graphview.WithLocation(
			graphview.Vec2{X: float32(i%40) * 20, Y: float32(i/40) * 20}))
	}

	meta := graphview.NewMetadata()
	canvas := graphview.Rect{W: 800, H: 600}
	comp := graphview.ComputeState(g, &meta,
		graphview.NewSettingsInteraction(), graphview.NewSettingsStyle())
	pos := graphview.Vec2{X: 410, Y: 210}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		graphview.NodeAtScreenPos(g, comp, &meta, canvas, pos)
	}
}

func BenchmarkEdgeAtScreenPos(b *testing.B) {
	g := graphview.NewGraph(true)
	ids := make([]int64, 200)
	for i := range ids {
		ids[i] = g.AddNode(nil, graphview.WithLocation(
			graphview.Vec2{X: float32(i) * 30, Y: float32(i%7) * 40}))
	}
	for i := 1; i < len(ids); i++ {
		if _, err := g.AddEdge(ids[i-1], ids[i], nil); err != nil {
			b.Fatal(err)
		}
		if i%10 == 0 {
			// A second line between the pair makes both bow.
			if _, err := g.AddEdge(ids[i-1], ids[i], nil); err != nil {
				b.Fatal(err)
			}
		}
	}

	meta := graphview.NewMetadata()
	canvas := graphview.Rect{W: 800, H: 600}
	style := graphview.NewSettingsStyle()
	comp := graphview.ComputeState(g, &meta, graphview.NewSettingsInteraction(), style)
	pos := graphview.Vec2{X: 3000, Y: 100}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		graphview.EdgeAtScreenPos(g, comp, &meta, style, canvas, pos)
	}
}
