package sortutil

import (
	"sort"

	"github.com/gocrossmin/crossmin/layered"
)

// SortLayerByWeight stable-sorts layer.Nodes by Node.Weight ascending
// (ties preserve prior order) and reassigns Position to match the new
// slot order, per layer-sort primitive.
func SortLayerByWeight(layer *layered.Layer) {
	sort.SliceStable(layer.Nodes, func(i, j int) bool {
		return layer.Nodes[i].Weight < layer.Nodes[j].Weight
	})
	for i, n := range layer.Nodes {
		n.Position = i
	}
}

// SortNodesByDegree stable-sorts nodes by ascending total degree
// (up_degree + down_degree), per degree-sort primitive. It
// does not touch Position or any layer's Nodes slice; callers that want a
// degree-ordered traversal pass the returned order on to their own logic
// (sifting's visiting order, mds's first pass).
func SortNodesByDegree(nodes []*layered.Node) []*layered.Node {
	out := make([]*layered.Node, len(nodes))
	copy(out, nodes)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Degree() < out[j].Degree()
	})
	return out
}
