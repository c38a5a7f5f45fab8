package graphview

import (
	"errors"
	"fmt"
)

// ViewOption configures a GraphView at construction.
type ViewOption func(*GraphView)

// WithInteraction sets the interaction settings.
func WithInteraction(s SettingsInteraction) ViewOption {
	return func(v *GraphView) { v.interaction = s }
}

// WithNavigation sets the navigation settings.
func WithNavigation(s SettingsNavigation) ViewOption {
	return func(v *GraphView) { v.navigation = s }
}

// WithStyle sets the style settings.
func WithStyle(s SettingsStyle) ViewOption {
	return func(v *GraphView) { v.style = s }
}

// WithPalette replaces the default dark palette.
func WithPalette(p Palette) ViewOption {
	return func(v *GraphView) { v.palette = p }
}

// WithNodeDrawer replaces the default node drawer.
func WithNodeDrawer(d NodeDrawer) ViewOption {
	return func(v *GraphView) { v.nodeDrawer = d }
}

// WithEdgeDrawer replaces the default edge drawer.
func WithEdgeDrawer(d EdgeDrawer) ViewOption {
	return func(v *GraphView) { v.edgeDrawer = d }
}

// WithChangeChan streams every recorded change into ch in addition to
// the slice Update returns. Sends never block: when the channel is
// full the change is dropped with a warning, so size the buffer for
// the expected burst.
func WithChangeChan(ch chan<- Change) ViewOption {
	return func(v *GraphView) { v.changes = ch }
}

// GraphView is an interactive view over a Graph. Each frame the host
// calls Update with a Context; the view derives the frame state from
// the durable flags on the graph's elements, applies pointer
// interactions, paints through the context's Painter when one is
// present and reports every mutation it performed.
//
// The view itself holds no per-frame state. Everything persistent
// lives either on the graph's elements or in the Metadata blob kept in
// the context's StateStore under the widget id, so several views can
// share one store and one graph can be shown by several views at once.
type GraphView struct {
	g           *Graph
	interaction SettingsInteraction
	navigation  SettingsNavigation
	style       SettingsStyle
	palette     Palette
	nodeDrawer  NodeDrawer
	edgeDrawer  EdgeDrawer
	changes     chan<- Change
}

// New creates a view over g. Without options the view only displays:
// navigation fits the graph to the screen and all interactions are
// disabled.
func New(g *Graph, opts ...ViewOption) *GraphView {
	v := &GraphView{
		g:           g,
		interaction: NewSettingsInteraction(),
		navigation:  NewSettingsNavigation(),
		style:       NewSettingsStyle(),
		palette:     DarkPalette{},
		nodeDrawer:  DefaultNodeDrawer{},
		edgeDrawer:  DefaultEdgeDrawer{},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Graph returns the graph the view operates on.
func (v *GraphView) Graph() *Graph { return v.g }

// Update runs one frame: derive state, fit or navigate the camera,
// apply drags and clicks, draw, persist the camera. The id names this
// view instance inside the context's StateStore; reuse the same id
// every frame.
//
// The returned slice lists every mutation performed this frame in
// handler order, followed by one aggregate record per registered
// selection and folding subgraph. The error joins the failures of
// handlers that had to abort; the frame still completes around them.
func (v *GraphView) Update(ctx *Context, id string) ([]Change, error) {
	if v.g == nil {
		return nil, errors.New("graphview: view has no graph")
	}
	if ctx == nil || ctx.Input == nil || ctx.Store == nil {
		return nil, errors.New("graphview: incomplete context")
	}

	wid := NewID(id)
	meta := LoadMetadata(ctx.Store, wid)
	comp := ComputeState(v.g, &meta, v.interaction, v.style)
	rec := &frameRecorder{ch: v.changes}

	v.handleFitToScreen(ctx, &meta, comp)
	v.handleZoom(ctx, &meta)
	v.handleDrag(ctx, &meta, comp, rec)
	v.handlePan(ctx, &meta, comp)
	v.handleClick(ctx, &meta, comp, rec)

	if ctx.Painter != nil {
		drawFrame(&DrawContext{
			Painter:  ctx.Painter,
			Graph:    v.g,
			Computed: comp,
			Meta:     &meta,
			Canvas:   ctx.Canvas,
			Style:    v.style,
			Palette:  v.palette,
		}, v.nodeDrawer, v.edgeDrawer)
	}

	v.recordSubgraphChanges(comp, rec)

	meta.Bounds = comp.Bounds
	meta.Save(ctx.Store, wid)

	return rec.changes, errors.Join(rec.errs...)
}

// handleFitToScreen adjusts zoom and pan so the whole graph fits the
// canvas, on the first frame with content and on every frame while
// FitToScreenEnabled.
func (v *GraphView) handleFitToScreen(ctx *Context, meta *Metadata, comp *Computed) {
	if !meta.FirstFrame && !v.navigation.FitToScreenEnabled {
		return
	}
	if ctx.Canvas.W <= 0 || ctx.Canvas.H <= 0 {
		return
	}
	if !comp.Bounds.Valid() {
		logger.Warn("fit to screen skipped, graph has no nodes")
		return
	}
	meta.FitToScreen(ctx.Canvas, comp.Bounds, v.navigation.ScreenPadding)
	meta.FirstFrame = false
}

// handleZoom applies wheel movement as anchored zoom steps. Free
// navigation and fit-to-screen are mutually exclusive.
func (v *GraphView) handleZoom(ctx *Context, meta *Metadata) {
	if !v.navigation.ZoomAndPanEnabled || v.navigation.FitToScreenEnabled {
		return
	}
	delta := ctx.Input.ZoomDelta()
	if delta == 0 {
		return
	}
	pos := ctx.Input.HoverPos()
	if !ctx.Canvas.Contains(pos) {
		return
	}
	step := v.navigation.ZoomSpeed
	if delta < 0 {
		step = -step
	}
	meta.ApplyZoom(ctx.Canvas, step, pos)
}

// handleDrag grabs the node under a starting drag and moves it with
// the pointer. The grab resolves at the drag origin so a fast pointer
// cannot slip off the node before the threshold passes.
func (v *GraphView) handleDrag(ctx *Context, meta *Metadata, comp *Computed, rec *frameRecorder) {
	if !v.interaction.DraggingEnabled {
		return
	}
	in := ctx.Input

	if in.DragStarted() {
		origin := in.DragOrigin()
		if ctx.Canvas.Contains(origin) {
			if n := NodeAtScreenPos(v.g, comp, meta, ctx.Canvas, origin); n != nil {
				v.setNodeDragged(n, true, rec)
				comp.Dragged = n.id
			}
		}
	}
	if comp.Dragged == NoNode {
		return
	}

	n, err := v.g.Node(comp.Dragged)
	if err != nil {
		rec.fail("drag", err)
		comp.Dragged = NoNode
		return
	}
	if in.Dragging() {
		delta := in.DragDelta().Div(meta.Zoom)
		v.moveNode(n, n.Location.Add(delta), rec)
	}
	if in.DragReleased() {
		v.setNodeDragged(n, false, rec)
		comp.Dragged = NoNode
	}
}

// handlePan scrolls the camera with drags across empty space. A drag
// that grabbed a node this frame or any earlier one suppresses it.
func (v *GraphView) handlePan(ctx *Context, meta *Metadata, comp *Computed) {
	if !v.navigation.ZoomAndPanEnabled || v.navigation.FitToScreenEnabled {
		return
	}
	if comp.Dragged != NoNode || !ctx.Input.Dragging() {
		return
	}
	origin := ctx.Input.DragOrigin()
	if !ctx.Canvas.Contains(origin) {
		return
	}
	meta.Pan = meta.Pan.Add(ctx.Input.DragDelta())
}

// handleClick resolves what the pointer hit and dispatches. Nodes win
// over edges, edges over empty space; empty space clears the
// selection.
func (v *GraphView) handleClick(ctx *Context, meta *Metadata, comp *Computed, rec *frameRecorder) {
	if !v.clickable() {
		return
	}
	in := ctx.Input
	if !in.Clicked() && !in.DoubleClicked() {
		return
	}
	pos := in.HoverPos()
	if !ctx.Canvas.Contains(pos) {
		return
	}

	if n := NodeAtScreenPos(v.g, comp, meta, ctx.Canvas, pos); n != nil {
		if in.DoubleClicked() {
			v.handleNodeDoubleClick(n, comp, rec)
			return
		}
		v.handleNodeClick(n, comp, rec)
		return
	}
	if e := EdgeAtScreenPos(v.g, comp, meta, v.style, ctx.Canvas, pos); e != nil {
		if in.DoubleClicked() {
			// The pair's first click already toggled the edge.
			return
		}
		v.handleEdgeClick(e, comp, rec)
		return
	}
	if v.selectable() {
		v.deselectAll(comp, rec)
	}
}

func (v *GraphView) handleNodeClick(n *Node, comp *Computed, rec *frameRecorder) {
	if v.interaction.ClickingEnabled {
		rec.record(newClickedChange(n.id))
	}
	if !v.selectable() {
		return
	}
	if n.Selected() {
		v.setNodeSelected(n, false, rec)
		return
	}
	if !v.interaction.SelectionMultiEnabled {
		v.deselectAll(comp, rec)
	}
	v.setNodeSelected(n, true, rec)
}

// handleNodeDoubleClick folds the node, or unfolds everything when any
// fold is already in place.
func (v *GraphView) handleNodeDoubleClick(n *Node, comp *Computed, rec *frameRecorder) {
	if v.interaction.ClickingEnabled {
		rec.record(newDoubleClickedChange(n.id))
	}
	if !v.interaction.FoldingEnabled {
		return
	}
	if comp.Foldings.IsEmpty() {
		v.setNodeFolded(n, true, rec)
		return
	}
	for _, root := range comp.Foldings.Roots() {
		fn, err := v.g.Node(root)
		if err != nil {
			rec.fail("unfold", err)
			continue
		}
		v.setNodeFolded(fn, false, rec)
	}
}

func (v *GraphView) handleEdgeClick(e *Edge, comp *Computed, rec *frameRecorder) {
	if !v.selectable() {
		return
	}
	if e.Selected() {
		v.setEdgeSelected(e, false, rec)
		return
	}
	if !v.interaction.SelectionMultiEnabled {
		v.deselectAll(comp, rec)
	}
	v.setEdgeSelected(e, true, rec)
}

// deselectAll clears every selected element. The selection registry
// names every selected node; edges are swept directly since edge
// selection registers no subgraph.
func (v *GraphView) deselectAll(comp *Computed, rec *frameRecorder) {
	nodes, _ := comp.Selections.Elements()
	for _, id := range nodes {
		n, err := v.g.Node(id)
		if err != nil {
			rec.fail("deselect", err)
			continue
		}
		v.setNodeSelected(n, false, rec)
	}
	for _, e := range v.g.Edges() {
		if e.Selected() {
			v.setEdgeSelected(e, false, rec)
		}
	}
}

// recordSubgraphChanges exports the frame's registries as aggregate
// records: one per selection root, then one per folding root, in
// registration order. They describe the state the frame started from,
// so this frame's clicks surface in the next frame's aggregates.
func (v *GraphView) recordSubgraphChanges(comp *Computed, rec *frameRecorder) {
	comp.Selections.Each(func(root int64, nodes, edges []int64) {
		rec.record(newSubgraphChange(SubgraphSelection, root, nodes, edges))
	})
	comp.Foldings.Each(func(root int64, nodes, edges []int64) {
		rec.record(newSubgraphChange(SubgraphFolding, root, nodes, edges))
	})
}

func (v *GraphView) clickable() bool {
	return v.interaction.ClickingEnabled ||
		v.interaction.SelectionEnabled ||
		v.interaction.SelectionMultiEnabled ||
		v.interaction.FoldingEnabled
}

func (v *GraphView) selectable() bool {
	return v.interaction.SelectionEnabled || v.interaction.SelectionMultiEnabled
}

// The set helpers write element flags and record the change. A write
// that would not change anything records nothing, which keeps the
// changelog idempotent.

func (v *GraphView) setNodeSelected(n *Node, val bool, rec *frameRecorder) {
	old := n.Selected()
	if old == val {
		return
	}
	n.SetSelected(val)
	rec.record(newSelectedChange(n.id, old, val))
}

func (v *GraphView) setNodeDragged(n *Node, val bool, rec *frameRecorder) {
	old := n.Dragged()
	if old == val {
		return
	}
	n.SetDragged(val)
	rec.record(newDraggedChange(n.id, old, val))
}

func (v *GraphView) setNodeFolded(n *Node, val bool, rec *frameRecorder) {
	old := n.Folded()
	if old == val {
		return
	}
	n.SetFolded(val)
	rec.record(newFoldedChange(n.id, old, val))
}

func (v *GraphView) setEdgeSelected(e *Edge, val bool, rec *frameRecorder) {
	old := e.Selected()
	if old == val {
		return
	}
	e.SetSelected(val)
	rec.record(newEdgeSelectedChange(e.id, old, val))
}

func (v *GraphView) moveNode(n *Node, to Vec2, rec *frameRecorder) {
	old := n.Location
	if old == to {
		return
	}
	n.Location = to
	rec.record(newMovedChange(n.id, old, to))
}

// frameRecorder accumulates one frame's changes and handler failures,
// mirroring each change into the optional host channel.
type frameRecorder struct {
	changes []Change
	errs    []error
	ch      chan<- Change
}

func (r *frameRecorder) record(c Change) {
	r.changes = append(r.changes, c)
	if r.ch == nil {
		return
	}
	select {
	case r.ch <- c:
	default:
		logger.Warn("change channel full, dropping", "change", c.String())
	}
}

func (r *frameRecorder) fail(op string, err error) {
	logger.Warn("interaction aborted", "op", op, "error", err)
	r.errs = append(r.errs, fmt.Errorf("%s: %w", op, err))
}
