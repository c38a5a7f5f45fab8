package graphview

// Painter is the primitive surface drawers render through. Backends
// translate these calls into their API. All positions are absolute
// screen coordinates; Text draws the string centered on pos.
type Painter interface {
	FillCircle(center Vec2, radius float32, color uint32)
	StrokeCircle(center Vec2, radius, width float32, color uint32)
	Line(a, b Vec2, width float32, color uint32)
	FillTriangle(a, b, c Vec2, color uint32)
	QuadBezier(a, control, b Vec2, width float32, color uint32)
	CubicBezier(a, control1, control2, b Vec2, width float32, color uint32)
	Text(pos Vec2, size float32, s string, color uint32)
}

// Palette answers the drawers' color questions. Implementations own
// the theme; the widget only distinguishes interaction states.
// interacted marks selection and fold roots and the dragged node, sub
// marks members of somebody else's selection subgraph.
type Palette interface {
	NodeColor(interacted, sub bool) uint32
	EdgeColor(interacted, sub bool) uint32
	LabelColor() uint32
	CanvasColor() uint32
}

// DarkPalette is the default theme: light strokes on a dark canvas,
// with interacted elements in white and subgraph members in blue.
type DarkPalette struct{}

func (DarkPalette) NodeColor(interacted, sub bool) uint32 {
	switch {
	case interacted:
		return ColorWhite
	case sub:
		return RGBA(100, 149, 237, 255)
	}
	return RGBA(200, 200, 200, 255)
}

func (DarkPalette) EdgeColor(interacted, sub bool) uint32 {
	switch {
	case interacted:
		return ColorWhite
	case sub:
		return RGBA(100, 149, 237, 255)
	}
	return ColorGray
}

func (DarkPalette) LabelColor() uint32 { return ColorWhite }

func (DarkPalette) CanvasColor() uint32 { return RGBA(30, 30, 30, 255) }

// DrawContext carries everything a drawer needs for one frame.
type DrawContext struct {
	Painter  Painter
	Graph    *Graph
	Computed *Computed
	Meta     *Metadata
	Canvas   Rect
	Style    SettingsStyle
	Palette  Palette
}

// NodeDrawer turns a node into paint calls. Custom implementations can
// read payloads and option keys to vary the shape.
type NodeDrawer interface {
	DrawNode(dc *DrawContext, n *Node, state *ComputedNode)
}

// EdgeDrawer turns an edge into paint calls.
type EdgeDrawer interface {
	DrawEdge(dc *DrawContext, e *Edge, state *ComputedEdge)
}

// DefaultNodeDrawer paints nodes as filled circles. Labels show for
// interacted nodes, or for all of them with SettingsStyle.LabelsAlways.
type DefaultNodeDrawer struct{}

func (DefaultNodeDrawer) DrawNode(dc *DrawContext, n *Node, state *ComputedNode) {
	pos := dc.Meta.GraphToScreen(dc.Canvas, n.Location)
	rad := state.ScreenRadius(dc.Meta.Zoom)
	interacted := n.Selected() || n.Dragged() || n.Folded()

	dc.Painter.FillCircle(pos, rad, dc.Palette.NodeColor(interacted, state.Subselected()))

	if n.Label == "" {
		return
	}
	if dc.Style.LabelsAlways || interacted || state.Subselected() {
		labelPos := Vec2{X: pos.X, Y: pos.Y - rad*2}
		dc.Painter.Text(labelPos, rad, n.Label, dc.Palette.LabelColor())
	}
}

// DefaultEdgeDrawer paints edges as strokes between node borders:
// straight for a lone edge, bowed quadratics for parallel siblings and
// cubic loops for self-edges, with arrowheads on directed graphs.
// The geometry mirrors the hit test exactly, scaled to the screen.
type DefaultEdgeDrawer struct{}

func (DefaultEdgeDrawer) DrawEdge(dc *DrawContext, e *Edge, state *ComputedEdge) {
	fromState := dc.Computed.NodeState(e.Source().ID())
	toState := dc.Computed.NodeState(e.Target().ID())
	if fromState == nil || toState == nil {
		return
	}

	zoom := dc.Meta.Zoom
	color := dc.Palette.EdgeColor(e.Selected(), state.Subselected())
	width := e.Width * zoom

	if e.loop() {
		center := dc.Meta.GraphToScreen(dc.Canvas, e.Source().Location)
		rad := fromState.ScreenRadius(zoom)
		size := rad * (dc.Style.EdgeLoopSize + float32(e.Order()))
		start, c1, c2, end := LoopPoints(center, rad, size)
		dc.Painter.CubicBezier(start, c1, c2, end, width, color)
		return
	}

	posFrom := dc.Meta.GraphToScreen(dc.Canvas, e.Source().Location)
	posTo := dc.Meta.GraphToScreen(dc.Canvas, e.Target().Location)
	radFrom := fromState.ScreenRadius(zoom)
	radTo := toState.ScreenRadius(zoom)

	if state.Siblings > 1 {
		offset := e.CurveSize * zoom * float32(e.Order()+1)
		start, control, end := CurvePoints(posFrom, posTo, radFrom, radTo, offset)
		if !dc.Graph.Directed() {
			dc.Painter.QuadBezier(start, control, end, width, color)
			return
		}
		tipDir := end.Sub(control).Normalized()
		wing1, wing2 := arrowWings(end, tipDir, e.TipSize*zoom, e.TipAngle)
		dc.Painter.QuadBezier(start, control, Midpoint(wing1, wing2), width, color)
		dc.Painter.FillTriangle(end, wing1, wing2, color)
		return
	}

	dir := posTo.Sub(posFrom).Normalized()
	start := posFrom.Add(dir.Mul(radFrom))
	tip := posTo.Sub(dir.Mul(radTo))

	if !dc.Graph.Directed() {
		dc.Painter.Line(start, tip, width, color)
		return
	}
	wing1, wing2 := arrowWings(tip, dir, e.TipSize*zoom, e.TipAngle)
	dc.Painter.Line(start, Midpoint(wing1, wing2), width, color)
	dc.Painter.FillTriangle(tip, wing1, wing2, color)
}

// arrowWings returns the two base corners of an arrowhead whose point
// sits at tip, approached along dir.
func arrowWings(tip, dir Vec2, size, angle float32) (Vec2, Vec2) {
	return tip.Sub(Rotate(dir, angle).Mul(size)),
		tip.Sub(Rotate(dir, -angle).Mul(size))
}

// drawFrame renders edges below nodes, interacted elements in a top
// layer, and skips everything a fold swallowed or the canvas cannot
// see.
func drawFrame(dc *DrawContext, nodeDrawer NodeDrawer, edgeDrawer EdgeDrawer) {
	var topEdges []*Edge
	var topNodes []*Node

	for _, e := range dc.Graph.Edges() {
		state := dc.Computed.EdgeState(e.ID())
		if state == nil || edgeHidden(dc.Computed, e) {
			continue
		}
		from := dc.Computed.NodeState(e.Source().ID())
		to := dc.Computed.NodeState(e.Target().ID())
		if from == nil || to == nil || !dc.Canvas.Intersects(edgeCullRect(dc, e, from, to)) {
			continue
		}
		if e.Selected() || state.Subselected() {
			topEdges = append(topEdges, e)
			continue
		}
		edgeDrawer.DrawEdge(dc, e, state)
	}
	for _, n := range dc.Graph.Nodes() {
		state := dc.Computed.NodeState(n.ID())
		if state == nil || state.Subfolded() {
			continue
		}
		if !dc.Canvas.Intersects(nodeCullRect(dc, n, state)) {
			continue
		}
		if n.Selected() || n.Dragged() || n.Folded() || state.Subselected() {
			topNodes = append(topNodes, n)
			continue
		}
		nodeDrawer.DrawNode(dc, n, state)
	}

	for _, e := range topEdges {
		edgeDrawer.DrawEdge(dc, e, dc.Computed.EdgeState(e.ID()))
	}
	for _, n := range topNodes {
		nodeDrawer.DrawNode(dc, n, dc.Computed.NodeState(n.ID()))
	}
}

// edgeHidden reports whether folding swallowed either endpoint.
func edgeHidden(comp *Computed, e *Edge) bool {
	if s := comp.NodeState(e.Source().ID()); s != nil && s.Subfolded() {
		return true
	}
	if s := comp.NodeState(e.Target().ID()); s != nil && s.Subfolded() {
		return true
	}
	return false
}
