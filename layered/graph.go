package layered

import "sort"

// AddNode appends a new node with the given name to layer, at whatever
// position it is first given (callers finalize positions with
// FinalizeLayers once every node on the layer is known). The
// node's ID is its 0-based index in the master node sequence, per
// .
func (g *Graph) AddNode(name string, layer int) (*Node, error) {
	if layer < 0 || layer >= len(g.Layers) {
		return nil, ErrLayerOutOfRange
	}
	n := &Node{
		ID:       len(g.Nodes),
		Name:     name,
		Layer:    layer,
		Position: len(g.Layers[layer].Nodes),
	}
	g.Nodes = append(g.Nodes, n)
	g.Layers[layer].Nodes = append(g.Layers[layer].Nodes, n)
	return n, nil
}

// PlaceNode assigns n an explicit declared position on its layer, as sgf
// does. Duplicate positions on the same layer are a fatal, caller-visible
// error (ErrDuplicatePosition); FinalizeLayers re-sorts and repacks
// positions afterward so slots need not be contiguous when declared.
func (g *Graph) PlaceNode(n *Node, position int) error {
	if n == nil {
		return ErrNilNode
	}
	layer := g.Layers[n.Layer]
	for _, other := range layer.Nodes {
		if other != n && other.Position == position {
			return ErrDuplicatePosition
		}
	}
	n.Position = position
	return nil
}

// FinalizeLayers sorts every layer's node slice by its current (possibly
// sparse, sgf-declared) Position and repacks Position to match the
// resulting 0-based slot, establishing the layer invariant. Called once
// after all nodes of a layer have been read.
func (g *Graph) FinalizeLayers() {
	for _, layer := range g.Layers {
		sort.SliceStable(layer.Nodes, func(i, j int) bool {
			return layer.Nodes[i].Position < layer.Nodes[j].Position
		})
		for i, n := range layer.Nodes {
			n.Position = i
		}
	}
}

// AddEdgeBetween creates an edge between a and b, classifying endpoints by
// layer number: the node on the higher-numbered layer becomes Up, the
// other Down. Returns ErrSameLayer if a and b
// share a layer, ErrNonAdjacentLayers if their layers differ by anything
// other than 1.
func (g *Graph) AddEdgeBetween(a, b *Node) (*Edge, error) {
	if a == nil || b == nil {
		return nil, ErrNilNode
	}
	if a.Layer == b.Layer {
		return nil, ErrSameLayer
	}
	diff := a.Layer - b.Layer
	if diff != 1 && diff != -1 {
		return nil, ErrNonAdjacentLayers
	}
	up, down := a, b
	if down.Layer > up.Layer {
		up, down = down, up
	}
	e := &Edge{ID: len(g.Edges), Up: up, Down: down}
	g.Edges = append(g.Edges, e)
	up.DownEdges = append(up.DownEdges, e)
	down.UpEdges = append(down.UpEdges, e)
	return e, nil
}

// CountIsolatedNodes sets IsolatedNodeCount to the number of degree-0
// nodes. Isolated nodes are logged, not removed.
func (g *Graph) CountIsolatedNodes() {
	count := 0
	for _, n := range g.Nodes {
		if n.Degree() == 0 {
			count++
		}
	}
	g.IsolatedNodeCount = count
}

// Validate checks the structural invariants that a loader
// must establish and every heuristic must preserve:
//  1. layer.Nodes[i].Position == i and layer.Nodes[i].Layer == layer index.
//  2. every edge's endpoints are on adjacent layers, Up the higher one.
//  3. a node appears in the up-edges of its lower neighbour iff it appears
//     in that neighbour's own down-edges, and symmetrically.
//  4. every node on a layer has that layer's index in its Layer field,
//     with no duplicate positions. Validate does not check that every
//     node of g.Nodes appears on the layer its Layer field names.
func (g *Graph) Validate() error {
	for idx, layer := range g.Layers {
		seen := make(map[int]bool, len(layer.Nodes))
		for i, n := range layer.Nodes {
			if n.Position != i || n.Layer != idx {
				return ErrDuplicatePosition
			}
			if seen[n.Position] {
				return ErrDuplicatePosition
			}
			seen[n.Position] = true
		}
	}
	for _, e := range g.Edges {
		if e.Up == nil || e.Down == nil {
			return ErrNilNode
		}
		if e.Up.Layer-e.Down.Layer != 1 {
			return ErrNonAdjacentLayers
		}
		if !containsEdge(e.Down.UpEdges, e) {
			return ErrNonAdjacentLayers
		}
		if !containsEdge(e.Up.DownEdges, e) {
			return ErrNonAdjacentLayers
		}
	}
	return nil
}

func containsEdge(edges []*Edge, target *Edge) bool {
	for _, e := range edges {
		if e == target {
			return true
		}
	}
	return false
}

// MoveNode removes n from its current layer slot and reinserts it at
// newPosition, shifting the intervening nodes and reassigning every
// affected node's Position, preserving the layer invariant. n must
// already belong to the layer it is on.
func (g *Graph) MoveNode(n *Node, newPosition int) error {
	if n == nil {
		return ErrNilNode
	}
	layer := g.Layers[n.Layer]
	old := n.Position
	if newPosition < 0 || newPosition >= len(layer.Nodes) {
		return ErrPositionOutOfRange
	}
	if old == newPosition {
		return nil
	}
	nodes := layer.Nodes
	nodes = append(nodes[:old], nodes[old+1:]...)
	if newPosition > len(nodes) {
		newPosition = len(nodes)
	}
	nodes = append(nodes, nil)
	copy(nodes[newPosition+1:], nodes[newPosition:])
	nodes[newPosition] = n
	layer.Nodes = nodes
	for i, m := range layer.Nodes {
		m.Position = i
	}
	return nil
}
