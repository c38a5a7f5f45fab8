package graphview

import "math"

// DepthUnlimited makes subgraph walks follow the graph until it is
// exhausted instead of stopping at a hop count.
const DepthUnlimited = math.MaxInt32

// SettingsInteraction controls which pointer interactions the widget
// responds to. Everything is off by default; hosts opt in per feature.
type SettingsInteraction struct {
	// DraggingEnabled lets the pointer pick up nodes and move them.
	DraggingEnabled bool

	// ClickingEnabled reports clicks and double-clicks on nodes as
	// change records.
	ClickingEnabled bool

	// SelectionEnabled lets clicks toggle node and edge selection.
	SelectionEnabled bool

	// SelectionMultiEnabled keeps previous selections when a new
	// element is selected instead of clearing them first.
	SelectionMultiEnabled bool

	// SelectionDepth extends a node's selection to its neighborhood.
	// Positive values walk outgoing edges, negative values walk
	// incoming edges, zero selects just the node. Magnitude is the hop
	// bound; use DepthUnlimited to take whole reachable subgraphs.
	SelectionDepth int

	// FoldingEnabled lets a double-click collapse a node's subtree
	// into it. Double-clicking again unfolds every folded root.
	FoldingEnabled bool

	// FoldingDepth bounds how many hops a fold swallows.
	FoldingDepth int
}

// NewSettingsInteraction returns interaction settings with every
// feature disabled and folding reaching the whole subtree once enabled.
func NewSettingsInteraction() SettingsInteraction {
	return SettingsInteraction{FoldingDepth: DepthUnlimited}
}

// WithDragging toggles node dragging.
func (s SettingsInteraction) WithDragging(enabled bool) SettingsInteraction {
	s.DraggingEnabled = enabled
	return s
}

// WithClicking toggles click and double-click reporting.
func (s SettingsInteraction) WithClicking(enabled bool) SettingsInteraction {
	s.ClickingEnabled = enabled
	return s
}

// WithSelection toggles click-to-select.
func (s SettingsInteraction) WithSelection(enabled bool) SettingsInteraction {
	s.SelectionEnabled = enabled
	return s
}

// WithSelectionMulti toggles accumulating selections.
func (s SettingsInteraction) WithSelectionMulti(enabled bool) SettingsInteraction {
	s.SelectionMultiEnabled = enabled
	return s
}

// WithSelectionDepth sets how far selection spreads from the clicked
// node. The sign picks the walk direction.
func (s SettingsInteraction) WithSelectionDepth(depth int) SettingsInteraction {
	s.SelectionDepth = depth
	return s
}

// WithFolding toggles double-click folding.
func (s SettingsInteraction) WithFolding(enabled bool) SettingsInteraction {
	s.FoldingEnabled = enabled
	return s
}

// WithFoldingDepth bounds how deep a fold reaches.
func (s SettingsInteraction) WithFoldingDepth(depth int) SettingsInteraction {
	s.FoldingDepth = depth
	return s
}

// SettingsNavigation controls the camera.
//
// Fit-to-screen and free navigation are mutually exclusive: while
// FitToScreenEnabled is set the camera re-fits every frame and wheel
// and drag input is ignored.
type SettingsNavigation struct {
	// FitToScreenEnabled recomputes zoom and pan every frame so the
	// whole graph stays visible.
	FitToScreenEnabled bool

	// ZoomAndPanEnabled lets the wheel zoom around the pointer and a
	// drag on empty space pan the canvas.
	ZoomAndPanEnabled bool

	// ScreenPadding is the margin fit-to-screen keeps around the graph,
	// as a fraction of the graph's bounding box.
	ScreenPadding float32

	// ZoomSpeed is the zoom factor step applied per wheel notch.
	ZoomSpeed float32
}

// NewSettingsNavigation returns navigation settings with fit-to-screen
// on, free navigation off, 30% padding and 10% zoom steps.
func NewSettingsNavigation() SettingsNavigation {
	return SettingsNavigation{
		FitToScreenEnabled: true,
		ScreenPadding:      0.3,
		ZoomSpeed:          0.1,
	}
}

// WithFitToScreen toggles per-frame fitting.
func (s SettingsNavigation) WithFitToScreen(enabled bool) SettingsNavigation {
	s.FitToScreenEnabled = enabled
	return s
}

// WithZoomAndPan toggles free navigation.
func (s SettingsNavigation) WithZoomAndPan(enabled bool) SettingsNavigation {
	s.ZoomAndPanEnabled = enabled
	return s
}

// WithScreenPadding sets the fit-to-screen margin.
func (s SettingsNavigation) WithScreenPadding(padding float32) SettingsNavigation {
	s.ScreenPadding = padding
	return s
}

// WithZoomSpeed sets the per-notch zoom step.
func (s SettingsNavigation) WithZoomSpeed(speed float32) SettingsNavigation {
	s.ZoomSpeed = speed
	return s
}

// SettingsStyle controls visual derivation rules that affect geometry,
// not colors. Colors live in the Palette.
type SettingsStyle struct {
	// LabelsAlways draws every label instead of only those of
	// interacted elements.
	LabelsAlways bool

	// EdgeRadiusWeight grows a node's radius per incident edge.
	EdgeRadiusWeight float32

	// FoldedRadiusWeight grows a folded node's radius per swallowed
	// descendant.
	FoldedRadiusWeight float32

	// EdgeLoopSize scales how far a self-loop extends from its node,
	// in node radii.
	EdgeLoopSize float32
}

// NewSettingsStyle returns style settings with loops at three radii and
// one radius unit of growth per incident edge and folded descendant.
func NewSettingsStyle() SettingsStyle {
	return SettingsStyle{
		EdgeRadiusWeight:   1,
		FoldedRadiusWeight: 1,
		EdgeLoopSize:       3,
	}
}

// WithLabelsAlways toggles unconditional label drawing.
func (s SettingsStyle) WithLabelsAlways(enabled bool) SettingsStyle {
	s.LabelsAlways = enabled
	return s
}

// WithEdgeRadiusWeight sets the per-edge radius growth.
func (s SettingsStyle) WithEdgeRadiusWeight(w float32) SettingsStyle {
	s.EdgeRadiusWeight = w
	return s
}

// WithFoldedRadiusWeight sets the per-descendant radius growth of a
// folded node.
func (s SettingsStyle) WithFoldedRadiusWeight(w float32) SettingsStyle {
	s.FoldedRadiusWeight = w
	return s
}

// WithEdgeLoopSize sets the self-loop extent in node radii.
func (s SettingsStyle) WithEdgeLoopSize(size float32) SettingsStyle {
	s.EdgeLoopSize = size
	return s
}
