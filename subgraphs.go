package graphview

// SubGraphs registers one walked subgraph per root node. Selection and
// folding each keep their own registry, rebuilt every frame from the
// durable flags on the nodes.
type SubGraphs struct {
	data  map[int64]subGraph
	roots []int64 // registration order
}

type subGraph struct {
	nodes []int64
	edges []int64
}

// AddSubgraph walks the graph from root and records the result under
// that root, replacing any previous record. The sign of depth picks
// the direction: positive walks outgoing edges, negative walks
// incoming ones, zero records just the root.
func (s *SubGraphs) AddSubgraph(g *Graph, root int64, depth int) error {
	dir := WalkOut
	if depth < 0 {
		dir = WalkIn
		depth = -depth
	}
	nodes, edges, err := g.Walk(root, depth, dir)
	if err != nil {
		return err
	}

	if s.data == nil {
		s.data = make(map[int64]subGraph)
	}
	if _, exists := s.data[root]; !exists {
		s.roots = append(s.roots, root)
	}
	s.data[root] = subGraph{nodes: nodes, edges: edges}
	return nil
}

// IsEmpty reports whether no subgraph is registered.
func (s *SubGraphs) IsEmpty() bool {
	return len(s.roots) == 0
}

// Roots returns the registered root identities in registration order.
func (s *SubGraphs) Roots() []int64 {
	out := make([]int64, len(s.roots))
	copy(out, s.roots)
	return out
}

// ElementsByRoot returns the members of one root's record. The root
// itself is the first node.
func (s *SubGraphs) ElementsByRoot(root int64) (nodes, edges []int64, ok bool) {
	sub, ok := s.data[root]
	if !ok {
		return nil, nil, false
	}
	return sub.nodes, sub.edges, true
}

// Elements returns the union of all records, deduplicated, in
// registration-then-walk order.
func (s *SubGraphs) Elements() (nodes, edges []int64) {
	seenNode := make(map[int64]bool)
	seenEdge := make(map[int64]bool)
	for _, root := range s.roots {
		sub := s.data[root]
		for _, id := range sub.nodes {
			if !seenNode[id] {
				seenNode[id] = true
				nodes = append(nodes, id)
			}
		}
		for _, id := range sub.edges {
			if !seenEdge[id] {
				seenEdge[id] = true
				edges = append(edges, id)
			}
		}
	}
	return nodes, edges
}

// Each calls fn for every registered record in registration order.
func (s *SubGraphs) Each(fn func(root int64, nodes, edges []int64)) {
	for _, root := range s.roots {
		sub := s.data[root]
		fn(root, sub.nodes, sub.edges)
	}
}
