package xing

import (
	"math"

	"github.com/gocrossmin/crossmin/layered"
)

// UpdateAllCrossings recomputes, from the current positions, every bilayer
// boundary's crossing count, every edge's Crossings, every node's
// UpCrossings/DownCrossings, Graph.BilayerCrossings, and Graph.TotalCrossings.
// Callers must run this after restoring a snapshot or after any sequence
// of position changes whose incremental effect was not tracked locally.
func UpdateAllCrossings(g *layered.Graph) {
	boundaries := len(g.Layers) - 1
	if boundaries < 0 {
		boundaries = 0
	}
	if len(g.BilayerCrossings) != boundaries {
		g.BilayerCrossings = make([]int, boundaries)
	}
	total := 0
	for lo := 0; lo < boundaries; lo++ {
		c := recomputeBilayer(g, lo)
		g.BilayerCrossings[lo] = c
		total += c
	}
	g.TotalCrossings = total
}

// UpdateCrossingsForLayer recomputes only the (at most two) bilayer
// boundaries incident to layer k: (k-1,k) and (k,k+1). It is the cheap,
// local form heuristics use after moving nodes within or around layer k.
func UpdateCrossingsForLayer(g *layered.Graph, k int) {
	if g.BilayerCrossings == nil || len(g.BilayerCrossings) != len(g.Layers)-1 {
		UpdateAllCrossings(g)
		return
	}
	if k-1 >= 0 {
		c := recomputeBilayer(g, k-1)
		g.TotalCrossings += c - g.BilayerCrossings[k-1]
		g.BilayerCrossings[k-1] = c
	}
	if k >= 0 && k < len(g.Layers)-1 {
		c := recomputeBilayer(g, k)
		g.TotalCrossings += c - g.BilayerCrossings[k]
		g.BilayerCrossings[k] = c
	}
}

// recomputeBilayer recomputes the crossing count for the boundary between
// layers lo and lo+1 using the standard bilayer-crossing procedure: list
// every edge between the two layers as an (endpoint-position-on-lo,
// endpoint-position-on-lo+1) pair and count inversions.
// It also rewrites every affected edge's Crossings and the UpCrossings of
// lo's nodes / DownCrossings of lo+1's nodes, since those fields are
// wholly determined by this one boundary.
func recomputeBilayer(g *layered.Graph, lo int) int {
	lower := g.Layers[lo]
	upper := g.Layers[lo+1]

	var edges []*layered.Edge
	for _, n := range lower.Nodes {
		edges = append(edges, n.UpEdges...)
	}
	for _, e := range edges {
		e.Crossings = 0
	}

	count := 0
	for i := 0; i < len(edges); i++ {
		a := edges[i]
		for j := i + 1; j < len(edges); j++ {
			b := edges[j]
			if (a.Down.Position-b.Down.Position)*(a.Up.Position-b.Up.Position) < 0 {
				count++
				a.Crossings++
				b.Crossings++
			}
		}
	}

	for _, n := range lower.Nodes {
		sum := 0
		for _, e := range n.UpEdges {
			sum += e.Crossings
		}
		n.UpCrossings = sum
	}
	for _, n := range upper.Nodes {
		sum := 0
		for _, e := range n.DownEdges {
			sum += e.Crossings
		}
		n.DownCrossings = sum
	}
	return count
}

// NumberOfCrossings returns the total number of crossing pairs in the
// current ordering, each pair counted once.
func NumberOfCrossings(g *layered.Graph) int { return g.TotalCrossings }

// MaxEdgeCrossings returns the maximum Crossings over all edges, the
// bottleneck objective.
func MaxEdgeCrossings(g *layered.Graph) int {
	max := 0
	for _, e := range g.Edges {
		if e.Crossings > max {
			max = e.Crossings
		}
	}
	return max
}

// NodeCrossings returns the number of crossings contributed by edges
// incident to u or v, assuming u appears to the left of v on their
// (shared) layer. It is the building block of swap-based reasoning (the
// post-processor) and sift-based reasoning (sifting, mcn, mce, mse): for
// every pair of same-direction edges, one from u and one from v, the
// edges cross in that order iff u's neighbour sits strictly to the right
// of v's neighbour on the shared adjacent layer.
func NodeCrossings(u, v *layered.Node) int {
	count := 0
	for _, eu := range u.UpEdges {
		for _, ev := range v.UpEdges {
			if eu.Up.Position > ev.Up.Position {
				count++
			}
		}
	}
	for _, eu := range u.DownEdges {
		for _, ev := range v.DownEdges {
			if eu.Down.Position > ev.Down.Position {
				count++
			}
		}
	}
	return count
}

// edgeStretch computes |pu/(nu-1) - pv/(nv-1)| for one edge, the
// normalized stretch, with the convention that a layer of
// size <= 1 contributes 0 to either side.
func edgeStretch(e *layered.Edge, g *layered.Graph) float64 {
	upLayer := g.Layers[e.Up.Layer]
	downLayer := g.Layers[e.Down.Layer]
	var pu, pd float64
	if len(upLayer.Nodes) > 1 {
		pu = float64(e.Up.Position) / float64(len(upLayer.Nodes)-1)
	}
	if len(downLayer.Nodes) > 1 {
		pd = float64(e.Down.Position) / float64(len(downLayer.Nodes)-1)
	}
	return math.Abs(pu - pd)
}

// EdgeStretch returns e's normalized stretch, the per-edge quantity mse
// selects its maximum-stretch edge by.
func EdgeStretch(e *layered.Edge, g *layered.Graph) float64 { return edgeStretch(e, g) }

// TotalStretch returns the sum of edgeStretch over every edge.
func TotalStretch(g *layered.Graph) float64 {
	total := 0.0
	for _, e := range g.Edges {
		total += edgeStretch(e, g)
	}
	return total
}

// BottleneckStretch returns the maximum edgeStretch over every edge.
func BottleneckStretch(g *layered.Graph) float64 {
	max := 0.0
	for _, e := range g.Edges {
		if s := edgeStretch(e, g); s > max {
			max = s
		}
	}
	return max
}
