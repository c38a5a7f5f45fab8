package graphview

import "fmt"

// ChangeNodeKind enumerates node mutations the widget reports.
type ChangeNodeKind int

const (
	// NodeClicked reports a click; it carries no old/new state.
	NodeClicked ChangeNodeKind = iota
	// NodeDoubleClicked reports a double-click.
	NodeDoubleClicked
	// NodeSelected reports a selection flag transition.
	NodeSelected
	// NodeDragged reports a drag flag transition.
	NodeDragged
	// NodeFolded reports a fold flag transition.
	NodeFolded
	// NodeMoved reports a location change.
	NodeMoved
)

func (k ChangeNodeKind) String() string {
	switch k {
	case NodeClicked:
		return "clicked"
	case NodeDoubleClicked:
		return "double-clicked"
	case NodeSelected:
		return "selected"
	case NodeDragged:
		return "dragged"
	case NodeFolded:
		return "folded"
	case NodeMoved:
		return "moved"
	}
	return "unknown"
}

// ChangeNode records one node mutation. Old and New carry the flag
// transition for the flag kinds; OldLocation and NewLocation carry the
// movement for NodeMoved.
type ChangeNode struct {
	ID   int64
	Kind ChangeNodeKind

	Old, New                 bool
	OldLocation, NewLocation Vec2
}

func (c ChangeNode) String() string {
	switch c.Kind {
	case NodeMoved:
		return fmt.Sprintf("node %d moved (%.1f, %.1f) -> (%.1f, %.1f)",
			c.ID, c.OldLocation.X, c.OldLocation.Y, c.NewLocation.X, c.NewLocation.Y)
	case NodeClicked, NodeDoubleClicked:
		return fmt.Sprintf("node %d %s", c.ID, c.Kind)
	}
	return fmt.Sprintf("node %d %s %t -> %t", c.ID, c.Kind, c.Old, c.New)
}

// ChangeEdge records an edge selection transition.
type ChangeEdge struct {
	ID       int64
	Old, New bool
}

func (c ChangeEdge) String() string {
	return fmt.Sprintf("edge %d selected %t -> %t", c.ID, c.Old, c.New)
}

// SubgraphKind tells selection aggregates from folding aggregates.
type SubgraphKind int

const (
	SubgraphSelection SubgraphKind = iota
	SubgraphFolding
)

func (k SubgraphKind) String() string {
	if k == SubgraphFolding {
		return "folding"
	}
	return "selection"
}

// ChangeSubgraph reports one root's full member set. The widget emits
// these after the per-interaction records, selections before foldings,
// every frame a registry is non-empty.
type ChangeSubgraph struct {
	Root  int64
	Kind  SubgraphKind
	Nodes []int64
	Edges []int64
}

func (c ChangeSubgraph) String() string {
	return fmt.Sprintf("%s subgraph at %d: %d nodes, %d edges",
		c.Kind, c.Root, len(c.Nodes), len(c.Edges))
}

// Change is one entry of the frame's changelog. Exactly one of the
// fields is set.
type Change struct {
	Node     *ChangeNode
	Edge     *ChangeEdge
	SubGraph *ChangeSubgraph
}

func (c Change) String() string {
	switch {
	case c.Node != nil:
		return c.Node.String()
	case c.Edge != nil:
		return c.Edge.String()
	case c.SubGraph != nil:
		return c.SubGraph.String()
	}
	return "empty change"
}

func newClickedChange(id int64) Change {
	return Change{Node: &ChangeNode{ID: id, Kind: NodeClicked}}
}

func newDoubleClickedChange(id int64) Change {
	return Change{Node: &ChangeNode{ID: id, Kind: NodeDoubleClicked}}
}

func newSelectedChange(id int64, old, now bool) Change {
	return Change{Node: &ChangeNode{ID: id, Kind: NodeSelected, Old: old, New: now}}
}

func newDraggedChange(id int64, old, now bool) Change {
	return Change{Node: &ChangeNode{ID: id, Kind: NodeDragged, Old: old, New: now}}
}

func newFoldedChange(id int64, old, now bool) Change {
	return Change{Node: &ChangeNode{ID: id, Kind: NodeFolded, Old: old, New: now}}
}

func newMovedChange(id int64, old, now Vec2) Change {
	return Change{Node: &ChangeNode{ID: id, Kind: NodeMoved, OldLocation: old, NewLocation: now}}
}

func newEdgeSelectedChange(id int64, old, now bool) Change {
	return Change{Edge: &ChangeEdge{ID: id, Old: old, New: now}}
}

func newSubgraphChange(kind SubgraphKind, root int64, nodes, edges []int64) Change {
	return Change{SubGraph: &ChangeSubgraph{Root: root, Kind: kind, Nodes: nodes, Edges: edges}}
}
