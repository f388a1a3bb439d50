package heuristic

import (
	"math"

	"github.com/gocrossmin/crossmin/layered"
	"github.com/gocrossmin/crossmin/xing"
)

// siftNode tries every position on n's layer, scoring each with score
// (evaluated after crossing caches are refreshed for n's layer), and
// leaves n at the left-most position achieving the minimum score. It
// returns the winning score.
func siftNode(g *layered.Graph, n *layered.Node, score func() float64) float64 {
	layer := g.Layers[n.Layer]
	bestPos := n.Position
	bestScore := math.Inf(1)

	for p := 0; p < len(layer.Nodes); p++ {
		_ = g.MoveNode(n, p)
		xing.UpdateCrossingsForLayer(g, n.Layer)
		s := score()
		if s < bestScore {
			bestScore = s
			bestPos = p
		}
	}
	_ = g.MoveNode(n, bestPos)
	xing.UpdateCrossingsForLayer(g, n.Layer)
	return bestScore
}

// totalCrossingsScore scores a sift candidate by the graph's total
// crossings, the objective used by plain sifting, mcn, and mce_s.
func totalCrossingsScore(g *layered.Graph) func() float64 {
	return func() float64 { return float64(xing.NumberOfCrossings(g)) }
}

// nodeMaxCrossingsScore scores a sift candidate by the maximum crossings
// of any edge incident to n, the mce objective.
func nodeMaxCrossingsScore(n *layered.Node) func() float64 {
	return func() float64 {
		max := 0
		for _, e := range n.UpEdges {
			if e.Crossings > max {
				max = e.Crossings
			}
		}
		for _, e := range n.DownEdges {
			if e.Crossings > max {
				max = e.Crossings
			}
		}
		return float64(max)
	}
}

// totalStretchScore scores a sift candidate by the graph's total stretch,
// the mse objective.
func totalStretchScore(g *layered.Graph) func() float64 {
	return func() float64 { return xing.TotalStretch(g) }
}
