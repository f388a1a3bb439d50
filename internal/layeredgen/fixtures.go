package layeredgen

import (
	"fmt"
	"math/rand"

	"github.com/gocrossmin/crossmin/layered"
)

// Path builds the one-edge-per-adjacent-layer-pair path graph: one node
// per layer, 0->1->2->..., zero crossings possible in any ordering.
func Path(numLayers int) *layered.Graph {
	g := layered.NewGraph("path", numLayers)
	nodes := make([]*layered.Node, numLayers)
	for i := 0; i < numLayers; i++ {
		nodes[i], _ = g.AddNode(fmt.Sprintf("%d", i), i)
	}
	g.FinalizeLayers()
	for i := 0; i < numLayers-1; i++ {
		_, _ = g.AddEdgeBetween(nodes[i], nodes[i+1])
	}
	return g
}

// CompleteBipartite builds the two-layer complete bipartite graph (K2,2
// when m=n=2): m nodes on layer 0, n nodes on layer 1, every cross edge
// present.
func CompleteBipartite(m, n int) *layered.Graph {
	g := layered.NewGraph("bipartite", 2)
	lower := make([]*layered.Node, m)
	upper := make([]*layered.Node, n)
	for i := 0; i < m; i++ {
		lower[i], _ = g.AddNode(fmt.Sprintf("a%d", i), 0)
	}
	for i := 0; i < n; i++ {
		upper[i], _ = g.AddNode(fmt.Sprintf("b%d", i), 1)
	}
	g.FinalizeLayers()
	for _, a := range lower {
		for _, b := range upper {
			_, _ = g.AddEdgeBetween(a, b)
		}
	}
	return g
}

// IdentityMatchingChain builds layersCount layers of width nodes each,
// with an identity matching (i-i) between every pair of adjacent layers:
// zero crossings, unchanged by any heuristic.
func IdentityMatchingChain(layersCount, width int) *layered.Graph {
	g := layered.NewGraph("identity-chain", layersCount)
	layers := make([][]*layered.Node, layersCount)
	for l := 0; l < layersCount; l++ {
		layers[l] = make([]*layered.Node, width)
		for i := 0; i < width; i++ {
			layers[l][i], _ = g.AddNode(fmt.Sprintf("%d-%d", l, i), l)
		}
	}
	g.FinalizeLayers()
	for l := 0; l < layersCount-1; l++ {
		for i := 0; i < width; i++ {
			_, _ = g.AddEdgeBetween(layers[l][i], layers[l+1][i])
		}
	}
	return g
}

// ReversedMatching builds the two-layer, width-node fully reversed
// matching: edges i-(width-1-i), the maximum-crossing configuration for a
// 1-1 matching.
func ReversedMatching(width int) *layered.Graph {
	g := layered.NewGraph("reversed-matching", 2)
	lower := make([]*layered.Node, width)
	upper := make([]*layered.Node, width)
	for i := 0; i < width; i++ {
		lower[i], _ = g.AddNode(fmt.Sprintf("p%d", i), 0)
		upper[i], _ = g.AddNode(fmt.Sprintf("q%d", i), 1)
	}
	g.FinalizeLayers()
	for i := 0; i < width; i++ {
		_, _ = g.AddEdgeBetween(lower[i], upper[width-1-i])
	}
	return g
}

// RandomSparse builds a deterministic pseudo-random layered DAG with the
// given layer widths and approximately numEdges edges scattered between
// adjacent layers, used for scale/runtime-budget scenarios.
func RandomSparse(layerWidths []int, numEdges int, seed int64) *layered.Graph {
	g := layered.NewGraph("random-sparse", len(layerWidths))
	layers := make([][]*layered.Node, len(layerWidths))
	for l, width := range layerWidths {
		layers[l] = make([]*layered.Node, width)
		for i := 0; i < width; i++ {
			layers[l][i], _ = g.AddNode(fmt.Sprintf("%d-%d", l, i), l)
		}
	}
	g.FinalizeLayers()

	if len(layerWidths) < 2 {
		return g
	}
	rng := rand.New(rand.NewSource(seed))
	seen := make(map[[3]int]bool, numEdges)
	attempts := 0
	for added := 0; added < numEdges && attempts < numEdges*20; attempts++ {
		l := rng.Intn(len(layerWidths) - 1)
		if len(layers[l]) == 0 || len(layers[l+1]) == 0 {
			continue
		}
		a := rng.Intn(len(layers[l]))
		b := rng.Intn(len(layers[l+1]))
		key := [3]int{l, a, b}
		if seen[key] {
			continue
		}
		seen[key] = true
		if _, err := g.AddEdgeBetween(layers[l][a], layers[l+1][b]); err == nil {
			added++
		}
	}
	g.CountIsolatedNodes()
	return g
}
