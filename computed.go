package graphview

// NoNode marks the absence of a node identity.
const NoNode int64 = -1

// ComputedNode is the per-frame derived state of a node.
type ComputedNode struct {
	// SelectedChild is set on nodes walked into from a selection root
	// along outgoing edges, SelectedParent along incoming ones. The
	// root itself carries neither; its own Selected flag already says
	// everything.
	SelectedChild  bool
	SelectedParent bool

	// FoldedChild is set on nodes swallowed by a folded ancestor.
	FoldedChild bool

	// NumFolded counts the descendants a folded root swallowed.
	NumFolded int

	radius float32
}

// Subselected reports whether the node belongs to a selection subgraph
// without being its root.
func (c *ComputedNode) Subselected() bool {
	return c.SelectedChild || c.SelectedParent
}

// Subfolded reports whether the node is hidden inside a folded root.
func (c *ComputedNode) Subfolded() bool {
	return c.FoldedChild
}

// Radius returns the node's effective graph-space radius this frame:
// its base radius grown by incident edges and folded descendants.
func (c *ComputedNode) Radius() float32 { return c.radius }

// ScreenRadius returns the effective radius scaled to the screen.
func (c *ComputedNode) ScreenRadius(zoom float32) float32 { return c.radius * zoom }

// ComputedEdge is the per-frame derived state of an edge.
type ComputedEdge struct {
	SelectedChild  bool
	SelectedParent bool

	// Siblings counts the edges sharing this edge's node pair, the
	// edge itself included. Lone edges draw straight, siblings bow.
	Siblings int
}

// Subselected reports whether the edge belongs to a selection subgraph.
func (c *ComputedEdge) Subselected() bool {
	return c.SelectedChild || c.SelectedParent
}

// Computed is everything derived from the graph at the start of a
// frame: the selection and folding registries, effective radii, the
// dragged node and the graph's bounding box. It is rebuilt every frame
// and never stored.
type Computed struct {
	// Dragged is the node currently being dragged, or NoNode.
	Dragged int64

	Selections SubGraphs
	Foldings   SubGraphs

	// Bounds accumulates every node's location padded by its screen
	// radius.
	Bounds Bounds

	nodes map[int64]*ComputedNode
	edges map[int64]*ComputedEdge
}

// ComputeState derives the frame state from the durable flags on the
// graph's elements.
func ComputeState(g *Graph, meta *Metadata, interaction SettingsInteraction, style SettingsStyle) *Computed {
	c := &Computed{
		Dragged: NoNode,
		Bounds:  NewBounds(),
		nodes:   make(map[int64]*ComputedNode),
		edges:   make(map[int64]*ComputedEdge),
	}
	for _, n := range g.Nodes() {
		c.computeForNode(g, meta, n, interaction, style)
	}
	for _, list := range g.EdgeMap() {
		for _, e := range list {
			c.ensureEdge(e.id).Siblings = len(list)
		}
	}
	return c
}

func (c *Computed) computeForNode(g *Graph, meta *Metadata, n *Node, interaction SettingsInteraction, style SettingsStyle) {
	state := c.ensureNode(g, n.id)

	if n.Dragged() {
		if c.Dragged != NoNode {
			logger.Warn("multiple nodes flagged dragged, keeping the last",
				"previous", c.Dragged, "node", n.id)
		}
		c.Dragged = n.id
	}

	if n.Selected() {
		c.computeSelection(g, n.id, interaction.SelectionDepth)
	}
	if n.Folded() {
		c.computeFolding(g, n.id, interaction.FoldingDepth)
	}

	state.radius += style.EdgeRadiusWeight*float32(g.IncidentLines(n.id)) +
		style.FoldedRadiusWeight*float32(state.NumFolded)

	rad := state.ScreenRadius(meta.Zoom)
	c.Bounds.Extend(n.Location.Sub(Vec2{X: rad, Y: rad}))
	c.Bounds.Extend(n.Location.Add(Vec2{X: rad, Y: rad}))
}

func (c *Computed) computeSelection(g *Graph, root int64, depth int) {
	if err := c.Selections.AddSubgraph(g, root, depth); err != nil {
		logger.Warn("selection walk failed", "root", root, "error", err)
		return
	}
	child := depth > 0
	nodes, edges, _ := c.Selections.ElementsByRoot(root)
	for _, id := range nodes {
		if id == root {
			continue
		}
		state := c.ensureNode(g, id)
		if child {
			state.SelectedChild = true
		} else {
			state.SelectedParent = true
		}
	}
	for _, id := range edges {
		state := c.ensureEdge(id)
		if child {
			state.SelectedChild = true
		} else {
			state.SelectedParent = true
		}
	}
}

func (c *Computed) computeFolding(g *Graph, root int64, depth int) {
	if depth < 0 {
		// Folds only swallow descendants.
		depth = 0
	}
	if err := c.Foldings.AddSubgraph(g, root, depth); err != nil {
		logger.Warn("folding walk failed", "root", root, "error", err)
		return
	}
	nodes, _, _ := c.Foldings.ElementsByRoot(root)
	c.ensureNode(g, root).NumFolded = len(nodes) - 1
	for _, id := range nodes {
		if id == root {
			continue
		}
		c.ensureNode(g, id).FoldedChild = true
	}
}

// ensureNode returns the node's record, creating it seeded with the
// node's base radius on first touch. Records can be created before
// their node's own visit when a selection or folding walk reaches
// ahead; later visits must not reset them.
func (c *Computed) ensureNode(g *Graph, id int64) *ComputedNode {
	if state, ok := c.nodes[id]; ok {
		return state
	}
	state := &ComputedNode{radius: DefaultNodeRadius}
	if n, err := g.Node(id); err == nil {
		state.radius = n.Radius
	}
	c.nodes[id] = state
	return state
}

func (c *Computed) ensureEdge(id int64) *ComputedEdge {
	if state, ok := c.edges[id]; ok {
		return state
	}
	state := &ComputedEdge{}
	c.edges[id] = state
	return state
}

// NodeState returns a node's derived state, or nil if the node was not
// part of the frame.
func (c *Computed) NodeState(id int64) *ComputedNode { return c.nodes[id] }

// EdgeState returns an edge's derived state, or nil if the edge was
// not part of the frame.
func (c *Computed) EdgeState(id int64) *ComputedEdge { return c.edges[id] }
