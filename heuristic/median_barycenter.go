package heuristic

import (
	"sort"

	"github.com/gocrossmin/crossmin/layered"
	"github.com/gocrossmin/crossmin/sortutil"
	"github.com/gocrossmin/crossmin/xing"
)

// downNeighbourPositions returns the positions, on the next lower layer, of
// n's down-neighbours (n is the Up endpoint of each edge in n.DownEdges).
func downNeighbourPositions(n *layered.Node) []int {
	pos := make([]int, len(n.DownEdges))
	for i, e := range n.DownEdges {
		pos[i] = e.Down.Position
	}
	return pos
}

// upNeighbourPositions returns the positions, on the next higher layer, of
// n's up-neighbours (n is the Down endpoint of each edge in n.UpEdges).
func upNeighbourPositions(n *layered.Node) []int {
	pos := make([]int, len(n.UpEdges))
	for i, e := range n.UpEdges {
		pos[i] = e.Up.Position
	}
	return pos
}

// medianWeight returns the median of a set of neighbour positions.
func medianWeight(positions []int) float64 {
	sorted := append([]int(nil), positions...)
	sort.Ints(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return (float64(sorted[n/2-1]) + float64(sorted[n/2])) / 2
}

// barycenterWeight returns the arithmetic mean of a set of neighbour
// positions.
func barycenterWeight(positions []int) float64 {
	sum := 0
	for _, p := range positions {
		sum += p
	}
	return float64(sum) / float64(len(positions))
}

// applyWeightPolicy fills in weight values for nodes that had no neighbour
// in the current sweep direction, per the configured WeightPolicy.
func applyWeightPolicy(values []float64, has []bool, policy WeightPolicy) {
	switch policy {
	case WeightNone:
		return
	case WeightAvg:
		sum, count := 0.0, 0
		for i, ok := range has {
			if ok {
				sum += values[i]
				count++
			}
		}
		if count == 0 {
			return
		}
		avg := sum / float64(count)
		for i, ok := range has {
			if !ok {
				values[i] = avg
			}
		}
	default: // WeightLeft
		for i, ok := range has {
			if !ok && i > 0 {
				values[i] = values[i-1]
			}
		}
	}
}

// sweepLayer assigns a weight to every node on layer from its neighbours
// in the direction named by neighbourPositions, applies the configured
// weight policy to nodes lacking such a neighbour, then layer-sorts.
func sweepLayer(layer *layered.Layer, neighbourPositions func(*layered.Node) []int, weightFn func([]int) float64, policy WeightPolicy) {
	values := make([]float64, len(layer.Nodes))
	has := make([]bool, len(layer.Nodes))
	for i, n := range layer.Nodes {
		positions := neighbourPositions(n)
		if len(positions) == 0 {
			continue
		}
		values[i] = weightFn(positions)
		has[i] = true
	}
	applyWeightPolicy(values, has, policy)
	for i, n := range layer.Nodes {
		n.Weight = values[i]
	}
	sortutil.SortLayerByWeight(layer)
}

// runSweep drives the shared median/barycenter sweep loop of :
// alternate an up sweep (layers 1..L-1, ordering each layer from its
// down-neighbours, the already-settled lower layer) and a down sweep
// (layers L-2..0, ordering each from its up-neighbours, the already-settled
// upper layer), repeating full sweep pairs until the iteration controller
// calls termination.
func runSweep(ctx *Context, opts Options, weightFn func([]int) float64) error {
	g := ctx.Graph
	xing.UpdateAllCrossings(g)

	for {
		for l := 1; l < len(g.Layers); l++ {
			sweepLayer(g.Layers[l], downNeighbourPositions, weightFn, opts.WeightPolicy)
			xing.UpdateCrossingsForLayer(g, l)
			terminated, err := ctx.endOfIteration(nil)
			if err != nil {
				return err
			}
			if terminated {
				return nil
			}
		}
		for l := len(g.Layers) - 2; l >= 0; l-- {
			sweepLayer(g.Layers[l], upNeighbourPositions, weightFn, opts.WeightPolicy)
			xing.UpdateCrossingsForLayer(g, l)
			terminated, err := ctx.endOfIteration(nil)
			if err != nil {
				return err
			}
			if terminated {
				return nil
			}
		}
		if ctx.endOfPass() {
			return nil
		}
	}
}
