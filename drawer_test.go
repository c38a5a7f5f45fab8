package graphview_test

import (
	"testing"

	"github.com/blitzar-tech/graphview"
)

type paintedCircle struct {
	center graphview.Vec2
	radius float32
}

// recordingPainter counts primitive calls so tests can assert what a
// frame draws without a real backend.
type recordingPainter struct {
	circles   []paintedCircle
	strokes   int
	lines     int
	triangles int
	quads     int
	cubics    int
	labels    []string
}

func (p *recordingPainter) FillCircle(center graphview.Vec2, radius float32, color uint32) {
	p.circles = append(p.circles, paintedCircle{center: center, radius: radius})
}

func (p *recordingPainter) StrokeCircle(center graphview.Vec2, radius, width float32, color uint32) {
	p.strokes++
}

func (p *recordingPainter) Line(a, b graphview.Vec2, width float32, color uint32) {
	p.lines++
}

func (p *recordingPainter) FillTriangle(a, b, c graphview.Vec2, color uint32) {
	p.triangles++
}

func (p *recordingPainter) QuadBezier(a, control, b graphview.Vec2, width float32, color uint32) {
	p.quads++
}

func (p *recordingPainter) CubicBezier(a, control1, control2, b graphview.Vec2, width float32, color uint32) {
	p.cubics++
}

func (p *recordingPainter) Text(pos graphview.Vec2, size float32, s string, color uint32) {
	p.labels = append(p.labels, s)
}

// newDrawHarness wires a recording painter into a view with a fixed
// identity camera, so screen positions equal graph positions.
func newDrawHarness(t *testing.T, g *graphview.Graph, opts ...graphview.ViewOption) (*viewHarness, *recordingPainter) {
	t.Helper()
	opts = append(opts, graphview.WithNavigation(
		graphview.NewSettingsNavigation().WithFitToScreen(false)))
	h := newViewHarness(t, g, opts...)
	h.seedCamera()
	p := &recordingPainter{}
	h.ctx.Painter = p
	return h, p
}

func TestDrawEdgeShapes(t *testing.T) {
	t.Run("undirected lone edge", func(t *testing.T) {
		g := graphview.NewGraph(false)
		a := g.AddNode(nil, graphview.WithLocation(graphview.Vec2{X: 100, Y: 100}))
		b := g.AddNode(nil, graphview.WithLocation(graphview.Vec2{X: 300, Y: 100}))
		g.AddEdge(a, b, nil)

		h, p := newDrawHarness(t, g)
		h.frame(1.0/60, nil)

		if p.lines != 1 || p.quads != 0 || p.cubics != 0 || p.triangles != 0 {
			t.Errorf("Expected one plain line, got %d lines %d quads %d cubics %d triangles",
				p.lines, p.quads, p.cubics, p.triangles)
		}
		if len(p.circles) != 2 {
			t.Errorf("Expected 2 node circles, got %d", len(p.circles))
		}
	})

	t.Run("directed lone edge", func(t *testing.T) {
		g := graphview.NewGraph(true)
		a := g.AddNode(nil, graphview.WithLocation(graphview.Vec2{X: 100, Y: 100}))
		b := g.AddNode(nil, graphview.WithLocation(graphview.Vec2{X: 300, Y: 100}))
		g.AddEdge(a, b, nil)

		h, p := newDrawHarness(t, g)
		h.frame(1.0/60, nil)

		if p.lines != 1 || p.triangles != 1 {
			t.Errorf("Expected a line with an arrowhead, got %d lines %d triangles",
				p.lines, p.triangles)
		}
	})

	t.Run("directed siblings bow", func(t *testing.T) {
		g := graphview.NewGraph(true)
		a := g.AddNode(nil, graphview.WithLocation(graphview.Vec2{X: 100, Y: 100}))
		b := g.AddNode(nil, graphview.WithLocation(graphview.Vec2{X: 300, Y: 100}))
		g.AddEdge(a, b, nil)
		g.AddEdge(a, b, nil)

		h, p := newDrawHarness(t, g)
		h.frame(1.0/60, nil)

		if p.quads != 2 || p.triangles != 2 || p.lines != 0 {
			t.Errorf("Expected two bowed arrows, got %d quads %d triangles %d lines",
				p.quads, p.triangles, p.lines)
		}
	})

	t.Run("directed self loop", func(t *testing.T) {
		g := graphview.NewGraph(true)
		a := g.AddNode(nil, graphview.WithLocation(graphview.Vec2{X: 100, Y: 100}))
		g.AddEdge(a, a, nil)

		h, p := newDrawHarness(t, g)
		h.frame(1.0/60, nil)

		if p.cubics != 1 || p.triangles != 0 || p.lines != 0 {
			t.Errorf("Expected one loop without an arrowhead, got %d cubics %d triangles %d lines",
				p.cubics, p.triangles, p.lines)
		}
		if len(p.circles) != 1 {
			t.Errorf("Expected 1 node circle, got %d", len(p.circles))
		}
	})
}

func TestFoldHidesSubtree(t *testing.T) {
	g := graphview.NewGraph(true)
	a := g.AddNode(nil,
		graphview.WithLocation(graphview.Vec2{X: 100, Y: 100}),
		graphview.WithFolded(true))
	b := g.AddNode(nil, graphview.WithLocation(graphview.Vec2{X: 300, Y: 100}))
	c := g.AddNode(nil, graphview.WithLocation(graphview.Vec2{X: 500, Y: 100}))
	g.AddEdge(a, b, nil)
	g.AddEdge(b, c, nil)

	h, p := newDrawHarness(t, g)
	h.frame(1.0/60, nil)

	if len(p.circles) != 1 {
		t.Fatalf("Expected only the fold root drawn, got %d circles", len(p.circles))
	}
	if p.circles[0].center != (graphview.Vec2{X: 100, Y: 100}) {
		t.Errorf("Expected the root at (100, 100), got %v", p.circles[0].center)
	}
	// Base 5, one outgoing line, two swallowed nodes.
	if p.circles[0].radius != 8 {
		t.Errorf("Expected the fold root grown to radius 8, got %f", p.circles[0].radius)
	}
	if p.lines != 0 || p.triangles != 0 {
		t.Errorf("Expected the swallowed edges hidden, got %d lines %d triangles",
			p.lines, p.triangles)
	}
}

func TestInteractedDrawnLast(t *testing.T) {
	g := graphview.NewGraph(true)
	g.AddNode(nil, graphview.WithLocation(graphview.Vec2{X: 100, Y: 100}))
	g.AddNode(nil,
		graphview.WithLocation(graphview.Vec2{X: 300, Y: 100}),
		graphview.WithSelected(true))

	h, p := newDrawHarness(t, g)
	h.frame(1.0/60, nil)

	if len(p.circles) != 2 {
		t.Fatalf("Expected both nodes drawn, got %d circles", len(p.circles))
	}
	if p.circles[1].center != (graphview.Vec2{X: 300, Y: 100}) {
		t.Errorf("Expected the selected node drawn on top, got %v last", p.circles[1].center)
	}
}

func TestLabelVisibility(t *testing.T) {
	build := func() *graphview.Graph {
		g := graphview.NewGraph(true)
		g.AddNode(nil,
			graphview.WithLocation(graphview.Vec2{X: 100, Y: 100}),
			graphview.WithLabel("alpha"))
		g.AddNode(nil,
			graphview.WithLocation(graphview.Vec2{X: 300, Y: 100}),
			graphview.WithLabel("beta"),
			graphview.WithSelected(true))
		return g
	}

	t.Run("interacted only", func(t *testing.T) {
		h, p := newDrawHarness(t, build())
		h.frame(1.0/60, nil)

		if len(p.labels) != 1 || p.labels[0] != "beta" {
			t.Errorf("Expected only the selected node labeled, got %v", p.labels)
		}
	})

	t.Run("labels always", func(t *testing.T) {
		h, p := newDrawHarness(t, build(),
			graphview.WithStyle(graphview.NewSettingsStyle().WithLabelsAlways(true)))
		h.frame(1.0/60, nil)

		if len(p.labels) != 2 || p.labels[0] != "alpha" || p.labels[1] != "beta" {
			t.Errorf("Expected both labels, got %v", p.labels)
		}
	})
}

func TestCullingSkipsOffscreen(t *testing.T) {
	t.Run("everything offscreen", func(t *testing.T) {
		g := graphview.NewGraph(false)
		a := g.AddNode(nil, graphview.WithLocation(graphview.Vec2{X: 10000, Y: 10000}))
		b := g.AddNode(nil, graphview.WithLocation(graphview.Vec2{X: 12000, Y: 12000}))
		g.AddEdge(a, b, nil)

		h, p := newDrawHarness(t, g)
		h.frame(1.0/60, nil)

		if len(p.circles) != 0 || p.lines != 0 {
			t.Errorf("Expected nothing drawn, got %d circles %d lines", len(p.circles), p.lines)
		}
	})

	t.Run("onscreen node survives", func(t *testing.T) {
		g := graphview.NewGraph(false)
		a := g.AddNode(nil, graphview.WithLocation(graphview.Vec2{X: 100, Y: 100}))
		b := g.AddNode(nil, graphview.WithLocation(graphview.Vec2{X: 5000, Y: 5000}))
		g.AddEdge(a, b, nil)

		h, p := newDrawHarness(t, g)
		h.frame(1.0/60, nil)

		if len(p.circles) != 1 {
			t.Fatalf("Expected one visible node, got %d circles", len(p.circles))
		}
		if p.circles[0].center != (graphview.Vec2{X: 100, Y: 100}) {
			t.Errorf("Expected the onscreen node drawn, got %v", p.circles[0].center)
		}
	})
}
