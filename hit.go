package graphview

// Flattening tolerances for edge hit tests, divided by zoom so that
// precision follows magnification.
const (
	loopFlattenTolerance  float32 = 10
	curveFlattenTolerance float32 = 2
)

// NodeAtScreenPos returns the first node in insertion order whose
// effective circle covers the screen position, or nil when the spot is
// empty. Nodes hidden inside a fold stay hittable.
func NodeAtScreenPos(g *Graph, comp *Computed, meta *Metadata, canvas Rect, screen Vec2) *Node {
	pos := meta.ScreenToGraph(canvas, screen)
	for _, n := range g.Nodes() {
		state := comp.NodeState(n.id)
		if state == nil {
			continue
		}
		if n.Location.Sub(pos).Length() <= state.Radius() {
			return n
		}
	}
	return nil
}

// EdgeAtScreenPos returns the first edge in insertion order whose
// stroke passes within its width of the screen position, or nil. The
// test replays the drawn geometry in graph coordinates, so parallel
// siblings and loops resolve to the exact curve under the pointer.
func EdgeAtScreenPos(g *Graph, comp *Computed, meta *Metadata, style SettingsStyle, canvas Rect, screen Vec2) *Edge {
	pos := meta.ScreenToGraph(canvas, screen)
	for _, e := range g.Edges() {
		if edgeContains(comp, meta, style, e, pos) {
			return e
		}
	}
	return nil
}

// edgeContains tests one edge against a graph-space position using the
// same geometry the default drawer paints.
func edgeContains(comp *Computed, meta *Metadata, style SettingsStyle, e *Edge, pos Vec2) bool {
	state := comp.EdgeState(e.id)
	fromState := comp.NodeState(e.from.id)
	toState := comp.NodeState(e.to.id)
	if state == nil || fromState == nil || toState == nil {
		return false
	}

	if e.loop() {
		rad := fromState.Radius()
		size := rad * (style.EdgeLoopSize + float32(e.Order()))
		start, c1, c2, end := LoopPoints(e.from.Location, rad, size)
		points := FlattenCubicBezier(start, c1, c2, end, loopFlattenTolerance/meta.Zoom)
		return pointNearPolyline(points, pos, e.Width)
	}

	if state.Siblings > 1 {
		offset := e.CurveSize * float32(e.Order()+1)
		start, control, end := CurvePoints(e.from.Location, e.to.Location,
			fromState.Radius(), toState.Radius(), offset)
		points := FlattenQuadBezier(start, control, end, curveFlattenTolerance/meta.Zoom)
		return pointNearPolyline(points, pos, e.Width)
	}

	return DistanceSegmentToPoint(e.from.Location, e.to.Location, pos) < e.Width
}
