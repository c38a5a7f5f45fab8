package graphview_test

import (
	"testing"

	"github.com/blitzar-tech/graphview"
)

// within and vecWithin are the shared tolerance checks for the float
// math under test.
func within(got, want, eps float32) bool {
	d := got - want
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func vecWithin(got, want graphview.Vec2, eps float32) bool {
	return within(got.X, want.X, eps) && within(got.Y, want.Y, eps)
}

func TestNewMetadataDefaults(t *testing.T) {
	m := graphview.NewMetadata()

	if m.Zoom != 1 {
		t.Errorf("Expected zoom 1, got %f", m.Zoom)
	}
	if m.Pan != (graphview.Vec2{}) {
		t.Errorf("Expected no pan, got %v", m.Pan)
	}
	if !m.FirstFrame {
		t.Error("Expected FirstFrame set")
	}
	if m.Bounds.Valid() {
		t.Error("Expected empty bounds")
	}
}

func TestMetadataSaveLoadReset(t *testing.T) {
	store := make(graphview.MapStateStore)
	id := graphview.NewID("camera")

	m := graphview.LoadMetadata(store, id)
	if m.Zoom != 1 || !m.FirstFrame {
		t.Fatalf("Expected defaults on first load, got %+v", m)
	}

	m.Zoom = 3
	m.Pan = graphview.Vec2{X: 4, Y: 5}
	m.FirstFrame = false
	m.Bounds.Extend(graphview.Vec2{X: 1, Y: 2})
	m.Save(store, id)

	got := graphview.LoadMetadata(store, id)
	if got.Zoom != 3 || got.Pan != (graphview.Vec2{X: 4, Y: 5}) || got.FirstFrame {
		t.Errorf("Expected saved camera back, got %+v", got)
	}
	if !got.Bounds.Valid() || got.Bounds.Min != (graphview.Vec2{X: 1, Y: 2}) {
		t.Errorf("Expected saved bounds back, got %+v", got.Bounds)
	}

	graphview.ResetMetadata(store, id)
	got = graphview.LoadMetadata(store, id)
	if got.Zoom != 1 || !got.FirstFrame {
		t.Errorf("Expected defaults after reset, got %+v", got)
	}
}

func TestScreenGraphRoundtrip(t *testing.T) {
	canvas := graphview.Rect{X: 50, Y: 40, W: 800, H: 600}
	m := graphview.NewMetadata()
	m.Zoom = 2.5
	m.Pan = graphview.Vec2{X: 13, Y: -7}

	p := graphview.Vec2{X: 10, Y: 20}
	screen := m.GraphToScreen(canvas, p)
	if !vecWithin(screen, graphview.Vec2{X: 88, Y: 83}, 1e-4) {
		t.Errorf("Expected screen (88, 83), got %v", screen)
	}

	back := m.ScreenToGraph(canvas, screen)
	if !vecWithin(back, p, 1e-4) {
		t.Errorf("Expected roundtrip back to %v, got %v", p, back)
	}
}

func TestApplyZoomKeepsAnchor(t *testing.T) {
	canvas := graphview.Rect{X: 50, Y: 40, W: 800, H: 600}
	m := graphview.NewMetadata()
	m.Zoom = 2
	m.Pan = graphview.Vec2{X: 30, Y: 20}

	anchor := graphview.Vec2{X: 200, Y: 150}
	under := m.ScreenToGraph(canvas, anchor)

	m.ApplyZoom(canvas, 0.25, anchor)
	if !within(m.Zoom, 2.5, 1e-5) {
		t.Errorf("Expected zoom 2.5, got %f", m.Zoom)
	}
	if got := m.GraphToScreen(canvas, under); !vecWithin(got, anchor, 1e-3) {
		t.Errorf("Expected the point under the anchor to stay at %v, got %v", anchor, got)
	}

	// Zooming back out around the same anchor keeps it pinned too.
	m.ApplyZoom(canvas, -0.2, anchor)
	if !within(m.Zoom, 2, 1e-5) {
		t.Errorf("Expected zoom 2, got %f", m.Zoom)
	}
	if got := m.GraphToScreen(canvas, under); !vecWithin(got, anchor, 1e-3) {
		t.Errorf("Expected the anchor to survive zooming out, got %v", got)
	}
}

func TestFitToScreen(t *testing.T) {
	canvas := graphview.Rect{W: 800, H: 600}
	bounds := graphview.NewBounds()
	bounds.Extend(graphview.Vec2{})
	bounds.Extend(graphview.Vec2{X: 100, Y: 50})

	m := graphview.NewMetadata()
	m.FitToScreen(canvas, bounds, 0.3)

	// The padded box is 130x65; width is the binding axis.
	if !within(m.Zoom, 800.0/130, 1e-3) {
		t.Errorf("Expected zoom %f, got %f", 800.0/130, m.Zoom)
	}
	if !vecWithin(m.Pan, graphview.Vec2{X: 92.3077, Y: 146.1538}, 1e-2) {
		t.Errorf("Expected pan (92.31, 146.15), got %v", m.Pan)
	}
	center := m.GraphToScreen(canvas, bounds.Center())
	if !vecWithin(center, canvas.Center(), 1e-2) {
		t.Errorf("Expected graph center on canvas center, got %v", center)
	}

	// Fitting the same bounds again must not move the camera.
	zoom, pan := m.Zoom, m.Pan
	m.FitToScreen(canvas, bounds, 0.3)
	if !within(m.Zoom, zoom, 1e-3) || !vecWithin(m.Pan, pan, 1e-2) {
		t.Errorf("Expected refit to hold steady, got zoom %f pan %v", m.Zoom, m.Pan)
	}
}

func TestMapStateStore(t *testing.T) {
	store := make(graphview.MapStateStore)
	id := graphview.NewID("thing")

	if _, ok := store.Get(id); ok {
		t.Error("Expected empty store miss")
	}
	store.Set(id, 7)
	if v, ok := store.Get(id); !ok || v != 7 {
		t.Errorf("Expected 7 back, got %v, %t", v, ok)
	}
	store.Delete(id)
	if _, ok := store.Get(id); ok {
		t.Error("Expected delete to remove the value")
	}
}

func TestGetStateWrongType(t *testing.T) {
	store := make(graphview.MapStateStore)
	id := graphview.NewID("typed")

	graphview.SetState(store, id, "not an int")
	if got := graphview.GetState(store, id, 42); got != 42 {
		t.Errorf("Expected default on type mismatch, got %d", got)
	}
	if got := graphview.GetState(store, graphview.NewID("absent"), 42); got != 42 {
		t.Errorf("Expected default on missing state, got %d", got)
	}
}

func TestNewIDStable(t *testing.T) {
	if graphview.NewID("a") != graphview.NewID("a") {
		t.Error("Expected the same identity to map to the same ID")
	}
	if graphview.NewID("a") == graphview.NewID("b") {
		t.Error("Expected distinct identities to map to distinct IDs")
	}
}
