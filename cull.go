package graphview

// Offscreen culling. With large graphs most elements sit outside the
// canvas on any given frame; skipping them before tessellation keeps
// the frame cost proportional to what is visible rather than to graph
// size. The rectangles are conservative: an element is only skipped
// when nothing it draws can touch the canvas.

// nodeCullRect returns the screen rectangle the node's circle and
// label can touch.
func nodeCullRect(dc *DrawContext, n *Node, state *ComputedNode) Rect {
	pos := dc.Meta.GraphToScreen(dc.Canvas, n.Location)
	rad := state.ScreenRadius(dc.Meta.Zoom)

	halfW := rad
	// The label sits two radii above the center at one radius of text
	// size, roughly one radius of width per rune.
	if w := float32(len(n.Label)) * rad / 2; w > halfW {
		halfW = w
	}
	return Rect{X: pos.X - halfW, Y: pos.Y - rad*3, W: halfW * 2, H: rad * 4}
}

// edgeCullRect returns the screen rectangle the edge's stroke can
// touch, whatever its shape.
func edgeCullRect(dc *DrawContext, e *Edge, from, to *ComputedNode) Rect {
	zoom := dc.Meta.Zoom
	posFrom := dc.Meta.GraphToScreen(dc.Canvas, e.Source().Location)
	radFrom := from.ScreenRadius(zoom)

	if e.loop() {
		reach := radFrom + radFrom*(dc.Style.EdgeLoopSize+float32(e.Order())) + e.Width*zoom
		return Rect{X: posFrom.X - reach, Y: posFrom.Y - reach, W: reach * 2, H: reach * 2}
	}

	posTo := dc.Meta.GraphToScreen(dc.Canvas, e.Target().Location)
	radTo := to.ScreenRadius(zoom)

	reach := maxf(radFrom, radTo) + (e.Width+e.TipSize)*zoom
	// A bowed sibling sticks out at most its control offset past the
	// chord.
	reach += e.CurveSize * zoom * float32(e.Order()+1)

	x1, x2 := minf(posFrom.X, posTo.X), maxf(posFrom.X, posTo.X)
	y1, y2 := minf(posFrom.Y, posTo.Y), maxf(posFrom.Y, posTo.Y)
	return Rect{X: x1 - reach, Y: y1 - reach, W: x2 - x1 + reach*2, H: y2 - y1 + reach*2}
}
