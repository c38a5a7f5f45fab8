package graphview

// DefaultNodeRadius is the base radius of a node before per-frame
// growth from incident edges and folded descendants.
const DefaultNodeRadius float32 = 5

// Node is a displayable graph vertex. Location is in graph space; the
// camera maps it to the screen. Payload carries arbitrary host data and
// is never touched by the widget.
//
// The selected, dragged and folded flags are the durable interaction
// state. They survive between frames on the node itself, while
// everything derived from them is rebuilt each frame into Computed.
type Node struct {
	id   int64
	opts options

	Location Vec2
	Payload  any
	Label    string
	Radius   float32

	selected bool
	dragged  bool
	folded   bool
}

// newNode builds a node from insertion options. The options are kept
// so custom drawers can read their own keys back via NodeOpt.
func newNode(id int64, payload any, o options) *Node {
	return &Node{
		id:       id,
		opts:     o,
		Location: GetOpt(o, OptLocation),
		Payload:  payload,
		Label:    GetOpt(o, OptLabel),
		Radius:   GetOpt(o, OptRadius),
		selected: GetOpt(o, OptSelected),
		folded:   GetOpt(o, OptFolded),
	}
}

// ID returns the node's graph identity.
// It satisfies gonum's graph.Node.
func (n *Node) ID() int64 { return n.id }

// Selected reports whether the node is a selection root.
func (n *Node) Selected() bool { return n.selected }

// SetSelected marks or unmarks the node as a selection root.
func (n *Node) SetSelected(selected bool) { n.selected = selected }

// Dragged reports whether the node is being dragged.
func (n *Node) Dragged() bool { return n.dragged }

// SetDragged marks or unmarks the node as dragged.
func (n *Node) SetDragged(dragged bool) { n.dragged = dragged }

// Folded reports whether the node has collapsed its subtree into
// itself.
func (n *Node) Folded() bool { return n.folded }

// SetFolded folds or unfolds the node.
func (n *Node) SetFolded(folded bool) { n.folded = folded }
