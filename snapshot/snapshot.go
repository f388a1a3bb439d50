package snapshot

import (
	"errors"

	"github.com/gocrossmin/crossmin/layered"
)

// ErrUnknownNodeID is returned by Restore when a snapshot does not fit the
// graph (a snapshot taken from a different, incompatible graph): its layer
// count differs from the graph's, or it references a node id that does not
// exist in the graph.
var ErrUnknownNodeID = errors.New("snapshot: unknown node id")

// Ordering is a flat, per-layer record of node ids in left-to-right
// order, keyed by layer index and within-layer slot.
type Ordering struct {
	Layers [][]int
}

// Save captures g's current layer ordering as a new Ordering, independent
// of g's live node pointers.
func Save(g *layered.Graph) *Ordering {
	ord := &Ordering{Layers: make([][]int, len(g.Layers))}
	for i, layer := range g.Layers {
		ids := make([]int, len(layer.Nodes))
		for j, n := range layer.Nodes {
			ids[j] = n.ID
		}
		ord.Layers[i] = ids
	}
	return ord
}

// Restore rewrites every layer's node sequence and every node's Position
// to match ord. Callers must invoke xing.UpdateAllCrossings before
// consulting crossing/stretch counts afterward.
func Restore(g *layered.Graph, ord *Ordering) error {
	if len(ord.Layers) != len(g.Layers) {
		return ErrUnknownNodeID
	}
	for i, ids := range ord.Layers {
		layer := g.Layers[i]
		nodes := make([]*layered.Node, len(ids))
		for j, id := range ids {
			n := g.NodeByID(id)
			if n == nil {
				return ErrUnknownNodeID
			}
			n.Layer = i
			n.Position = j
			nodes[j] = n
		}
		layer.Nodes = nodes
	}
	return nil
}

// Clone returns a deep copy of ord, safe to mutate independently.
func (ord *Ordering) Clone() *Ordering {
	clone := &Ordering{Layers: make([][]int, len(ord.Layers))}
	for i, ids := range ord.Layers {
		clone.Layers[i] = append([]int(nil), ids...)
	}
	return clone
}
