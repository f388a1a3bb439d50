package layered

import "errors"

// Sentinel errors for structural violations of the layered graph model.
// These map onto ioformat.ErrStructuralViolation's category.
var (
	// ErrNilNode indicates a nil node pointer was passed where a node was required.
	ErrNilNode = errors.New("layered: nil node")

	// ErrLayerOutOfRange indicates a layer index outside [0, len(Layers)).
	ErrLayerOutOfRange = errors.New("layered: layer index out of range")

	// ErrDuplicatePosition indicates two nodes were assigned the same position on a layer.
	ErrDuplicatePosition = errors.New("layered: duplicate position on layer")

	// ErrNonAdjacentLayers indicates an edge's endpoints are not on adjacent layers.
	ErrNonAdjacentLayers = errors.New("layered: edge endpoints are not on adjacent layers")

	// ErrSameLayer indicates an edge's endpoints are on the same layer.
	ErrSameLayer = errors.New("layered: edge endpoints are on the same layer")

	// ErrUnknownNodeID indicates a node id did not resolve to a node in the graph.
	ErrUnknownNodeID = errors.New("layered: unknown node id")

	// ErrPositionOutOfRange indicates a requested position is outside a layer's bounds.
	ErrPositionOutOfRange = errors.New("layered: position out of range")
)

// Node is a single vertex of the layered graph.
//
// Position is 0-based within Layer and is kept consistent with the owning
// Layer's Nodes slice by every mutator in this package (the layer
// invariant of ). UpEdges/DownEdges are append-only during load;
// heuristics only ever reorder Layer.Nodes and rewrite Position, never the
// adjacency slices.
type Node struct {
	// ID is the node's identity: its 0-based index in Graph.Nodes, assigned
	// once at load time and never reused.
	ID int

	// Name is the node's textual identity from the input file (a numeric
	// string for sgf, an arbitrary token for dot+ord).
	Name string

	// Layer is the 0-based layer index this node currently belongs to.
	Layer int

	// Position is this node's 0-based slot within its layer.
	Position int

	// UpEdges are edges whose Up endpoint is this node's neighbour on the
	// next higher-numbered layer (this node is the Down endpoint of each).
	UpEdges []*Edge

	// DownEdges are edges whose Down endpoint is this node's neighbour on
	// the next lower-numbered layer (this node is the Up endpoint of each).
	DownEdges []*Edge

	// UpCrossings is the sum of Crossings over UpEdges, kept current by the
	// xing package after update_all_crossings / update_crossings_for_layer.
	UpCrossings int

	// DownCrossings is the sum of Crossings over DownEdges, same contract
	// as UpCrossings.
	DownCrossings int

	// Weight is scratch space used by sort-based heuristics (median,
	// barycenter, degree sort, BFS/DFS preorder weights).
	Weight float64

	// Fixed marks a node as pinned by an iterative heuristic (mcn, mce);
	// cleared between passes by the heuristic that set it.
	Fixed bool

	// Marked and PreorderNumber are DFS scratch fields used by the dfs
	// preprocessor; meaningless outside a DFS traversal in progress.
	Marked         bool
	PreorderNumber int
}

// Crossings returns UpCrossings + DownCrossings, the CROSSINGS(node) macro
// of the source.
func (n *Node) Crossings() int { return n.UpCrossings + n.DownCrossings }

// Degree returns the total number of incident edges.
func (n *Node) Degree() int { return len(n.UpEdges) + len(n.DownEdges) }

// Edge joins two nodes on adjacent layers. Up is always the endpoint on
// the higher-numbered layer, Down the endpoint on the lower-numbered one;
// this orientation is fixed at construction time regardless of how the
// input file phrased the edge's direction (dot's arrows are ignored per
// ).
type Edge struct {
	// ID is the edge's 0-based index in Graph.Edges.
	ID int

	// Up is the endpoint on the higher-numbered layer.
	Up *Node

	// Down is the endpoint on the lower-numbered layer.
	Down *Node

	// Crossings is the current number of crossings attributed to this
	// edge, kept current by the xing package.
	Crossings int

	// Fixed marks an edge as pinned by mce's sifting loop.
	Fixed bool
}

// Layer is an ordered sequence of nodes sharing the same layer index.
type Layer struct {
	// Index is this layer's 0-based position in Graph.Layers.
	Index int

	// Nodes holds the layer's nodes left-to-right; Nodes[i].Position must
	// equal i for every i (the layer invariant).
	Nodes []*Node

	// Fixed marks a layer as pinned by modifiedBarycenter during a pass.
	Fixed bool
}

// Graph is the full in-memory k-layer DAG: layers, the master node/edge
// sequences, a name, and a free-form comments buffer preserved across
// input and output.
type Graph struct {
	// Name is the graph's name, used for default output file names.
	Name string

	// Layers holds every layer in ascending index order.
	Layers []*Layer

	// Nodes is the master node sequence; Nodes[i].ID == i always holds, so
	// NodeByID is simply an index into this slice.
	Nodes []*Node

	// Edges is the master edge sequence in creation order.
	Edges []*Edge

	// Comments accumulates comment lines encountered on input, in the
	// order they were read; re-emitted verbatim by the writers.
	Comments []string

	// IsolatedNodeCount is the number of degree-0 nodes, counted at load
	// time. Isolated nodes are left in place; they contribute nothing to
	// crossings.
	IsolatedNodeCount int

	// BilayerCrossings caches, per layer boundary k (between layers k and
	// k+1), the current crossing count; owned by the xing package.
	BilayerCrossings []int

	// TotalCrossings is the cached sum of BilayerCrossings; owned by xing.
	TotalCrossings int
}

// NewGraph allocates an empty Graph with numLayers empty layers.
func NewGraph(name string, numLayers int) *Graph {
	g := &Graph{Name: name, Layers: make([]*Layer, numLayers)}
	for i := range g.Layers {
		g.Layers[i] = &Layer{Index: i}
	}
	return g
}

// NodeByID returns the node with the given id, or nil if id is out of
// range. Valid because ids are assigned as 0-based indices into Nodes.
func (g *Graph) NodeByID(id int) *Node {
	if id < 0 || id >= len(g.Nodes) {
		return nil
	}
	return g.Nodes[id]
}

// AddComment appends a single comment line, preserving input order.
func (g *Graph) AddComment(line string) {
	g.Comments = append(g.Comments, line)
}
