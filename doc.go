/*
Package graphview provides an interactive graph-visualization widget for
immediate-mode UIs, built on gonum multigraphs.

# Overview

The widget follows the immediate-mode model: nothing is retained between
frames except the graph itself and a small camera blob in a StateStore.
Each frame the host feeds pointer input into a Context and calls
GraphView.Update, which derives the frame state, applies navigation and
interactions, optionally paints through a Painter backend and returns a
changelog of every mutation it performed.

Layout is the host's job. The widget never moves nodes on its own; it
reads and writes node locations, so any force-directed, hierarchical or
hand-rolled layout can run between frames.

# Quick Start

	// Setup
	g := graphview.NewGraph(true)
	a := g.AddNode(nil, graphview.WithLabel("a"))
	b := g.AddNode(nil, graphview.WithLabel("b"), graphview.WithLocation(graphview.Vec2{X: 80, Y: 40}))
	g.AddEdge(a, b, nil)

	view := graphview.New(g,
	    graphview.WithInteraction(graphview.NewSettingsInteraction().
	        WithDragging(true).
	        WithSelection(true)))

	ctx := graphview.NewContext()
	ctx.Painter = painter // any Painter backend; nil runs headless

	// Frame loop
	for running {
	    ctx.Input.Reset()
	    ctx.Input.Tick(dt)
	    // feed events: SetMousePos, SetMouseButton, SetMouseWheel
	    ctx.Begin(canvas, dt)

	    changes, err := view.Update(ctx, "main")
	    if err != nil {
	        log.Println(err)
	    }
	    for _, c := range changes {
	        fmt.Println(c)
	    }
	}

# Graph Construction

	graphview.NewGraph(directed bool) *Graph
	    Creates an empty graph. Directedness is fixed for the graph's
	    lifetime and decides edge arrowheads, walk directions and how
	    incident edges are counted.

	g.AddNode(payload any, opts ...Option) int64
	    Adds a node and returns its identity. The payload is opaque to
	    the widget and round-trips untouched.

	g.AddEdge(from, to int64, payload any, opts ...Option) (int64, error)
	    Adds an edge. Parallel edges and self-loops are allowed; each
	    edge gets an order number among the edges sharing its node pair,
	    contiguous from 0 in insertion order.

	g.RemoveNode(id int64) error
	    Removes a node and all its incident edges.

	g.RemoveEdge(id int64) error
	    Removes an edge and renumbers the remaining siblings so orders
	    stay contiguous.

	g.Node(id) (*Node, error)    g.Nodes() []*Node
	g.Edge(id) (*Edge, error)    g.Edges() []*Edge
	g.Endpoints(id) (*Node, *Node, error)
	    Lookups return ErrNodeNotFound or ErrEdgeNotFound wrapped with
	    the identity; slices come back in insertion order.

	g.Walk(root int64, depth int, dir WalkDirection) (nodes, edges []int64, err error)
	    Bounded breadth-first walk, cycle safe. WalkOut follows outgoing
	    edges, WalkIn incoming, WalkBoth ignores direction.

# Element Options

Options set the initial visual state of nodes and edges:

	WithLabel(label string)        Node or edge label
	WithLocation(loc Vec2)         Node position in graph coordinates
	WithRadius(r float32)          Node base radius (default 5)
	WithSelected(sel bool)         Start selected
	WithFolded(folded bool)        Start folded
	WithEdgeWidth(w float32)       Edge stroke width (default 2)
	WithEdgeTipSize(s float32)     Arrowhead length (default 15)
	WithEdgeTipAngle(a float32)    Arrowhead half-angle (default tau/30)
	WithEdgeCurveSize(s float32)   Sibling curve spacing (default 20)

Custom keys extend elements without changing the structs:

	var OptHeat = graphview.NewOptKey("heat", 0.0)

	id := g.AddNode(nil, graphview.WithOpt(OptHeat, 0.8))

# Interactions

All interactions are off by default and enabled through
SettingsInteraction:

	Click              Reports the node or edge under the pointer.
	Selection          Click toggles an element; clicking empty space
	                   clears the selection. SelectionMulti keeps
	                   previous selections. SelectionDepth extends a
	                   node's selection to its subgraph: positive walks
	                   outgoing edges, negative incoming, zero only the
	                   node itself.
	Folding            Double-click folds a node's descendants into it
	                   (bounded by FoldingDepth, DepthUnlimited by
	                   default); folded descendants are hidden and the
	                   root grows. A double-click while anything is
	                   folded unfolds everything.
	Dragging           Drag moves the node under the pointer, scaled by
	                   the current zoom.

Hit-testing is exact: clicks resolve against the curved geometry of
parallel edges and self-loops, so overlapping siblings pick the curve
actually under the pointer.

# Navigation

SettingsNavigation offers two mutually exclusive modes:

	FitToScreenEnabled   Re-fits the whole graph to the canvas every
	                     frame, honoring ScreenPadding (default on).
	ZoomAndPanEnabled    Wheel zooms about the pointer, dragging empty
	                     space pans. ZoomSpeed is the step per wheel
	                     notch.

The first frame with content always fits, so graphs start centered no
matter the mode.

# Changes

Update returns every mutation the frame performed, in order:

	ChangeNode     Clicked, DoubleClicked, Selected, Dragged, Folded
	               (old/new bool) and Moved (old/new location)
	ChangeEdge     Selected (old/new bool)
	ChangeSubgraph One aggregate per selection root, then one per
	               folding root, listing member nodes and edges

Writes that change nothing record nothing, so replaying a changelog is
idempotent. WithChangeChan additionally streams each change into a host
channel; sends never block and overflow is dropped with a warning.

# Frame State and Subgraphs

ComputeState builds a Computed snapshot at the start of every frame:
effective node radii (base radius grown per incident edge and per
folded descendant), selection and folding registries of type SubGraphs,
the dragged node and the graph's bounding box. Hosts running their own
interaction logic can call it directly, and resolve pointer positions
with NodeAtScreenPos and EdgeAtScreenPos.

# Custom Drawing

Drawing is split in three replaceable layers:

	Painter       Backend primitives: circles, lines, bezier strokes,
	              triangles, centered text. Implementations live in
	              backend/opengl (GPU) and backend/raster (image).
	Palette       Color queries by interaction state. DarkPalette is
	              the default.
	NodeDrawer,   Per-element geometry. The defaults draw circles with
	EdgeDrawer    labels, straight lone edges, quadratic fans for
	              parallel siblings, cubic self-loops and arrowheads on
	              directed graphs.

Custom drawers receive a DrawContext with the graph, the frame's
Computed state, the camera and the palette:

	type heatNodeDrawer struct{}

	func (heatNodeDrawer) DrawNode(dc *graphview.DrawContext, n *graphview.Node, state *graphview.ComputedNode) {
	    pos := dc.Meta.GraphToScreen(dc.Canvas, n.Location)
	    heat := graphview.NodeOpt(n, OptHeat)
	    dc.Painter.FillCircle(pos, state.ScreenRadius(dc.Meta.Zoom), heatColor(heat))
	}

# State Persistence

The widget stores one Metadata blob (zoom, pan, first-frame flag, last
bounds) per widget id in the Context's StateStore. MapStateStore is the
default; hosts with their own persistence implement the two-method
StateStore interface. ResetMetadata drops the blob so the next frame
starts from defaults and re-fits.
*/
package graphview
