package heuristic

import (
	"github.com/gocrossmin/crossmin/layered"
	"github.com/gocrossmin/crossmin/sortutil"
	"github.com/gocrossmin/crossmin/xing"
)

// layerCrossings returns the crossings attributed to the two bilayer
// boundaries touching layer idx (edges above plus edges below), the
// quantity modified barycenter maximises over to pick its next layer.
func layerCrossings(g *layered.Graph, idx int) int {
	total := 0
	if idx > 0 {
		total += g.BilayerCrossings[idx-1]
	}
	if idx < len(g.Layers)-1 {
		total += g.BilayerCrossings[idx]
	}
	return total
}

// pickMaxCrossingsLayer returns the index of the unfixed layer with the
// most crossings, tie-breaking on lowest index, or -1 if every layer is
// fixed.
func pickMaxCrossingsLayer(g *layered.Graph) int {
	best := -1
	bestCrossings := -1
	for i, layer := range g.Layers {
		if layer.Fixed {
			continue
		}
		c := layerCrossings(g, i)
		if c > bestCrossings {
			bestCrossings = c
			best = i
		}
	}
	return best
}

// barycenterWeightBoth computes a node's weight from both its up- and
// down-neighbours, as modified barycenter's fixing step requires. When
// balanced is true it averages the two one-sided means instead of taking
// the combined Σpositions/Σdegree mean (balanced_weight
// option).
func barycenterWeightBoth(n *layered.Node, balanced bool) (float64, bool) {
	up := upNeighbourPositions(n)
	down := downNeighbourPositions(n)
	if len(up) == 0 && len(down) == 0 {
		return 0, false
	}
	if !balanced {
		combined := make([]int, 0, len(up)+len(down))
		combined = append(combined, up...)
		combined = append(combined, down...)
		return barycenterWeight(combined), true
	}
	switch {
	case len(up) > 0 && len(down) > 0:
		return (barycenterWeight(up) + barycenterWeight(down)) / 2, true
	case len(up) > 0:
		return barycenterWeight(up), true
	default:
		return barycenterWeight(down), true
	}
}

// fixLayer barycenter-sorts layer using weights derived from both
// neighbour directions, then marks it fixed.
func fixLayer(layer *layered.Layer, policy WeightPolicy, balanced bool) {
	values := make([]float64, len(layer.Nodes))
	has := make([]bool, len(layer.Nodes))
	for i, n := range layer.Nodes {
		v, ok := barycenterWeightBoth(n, balanced)
		values[i] = v
		has[i] = ok
	}
	applyWeightPolicy(values, has, policy)
	for i, n := range layer.Nodes {
		n.Weight = values[i]
	}
	sortutil.SortLayerByWeight(layer)
	layer.Fixed = true
}

// RunModifiedBarycenter drives modified barycenter: within
// a pass, repeatedly fix the unfixed layer with the most crossings using
// both-neighbour barycenter weights, then resume a one-sided barycenter
// sweep above it (up sweep, down-neighbours) and below it (down sweep,
// up-neighbours) over the layers not yet fixed. The pass ends once every
// layer is fixed.
func RunModifiedBarycenter(ctx *Context, opts Options) error {
	g := ctx.Graph
	xing.UpdateAllCrossings(g)

	for {
		for _, layer := range g.Layers {
			layer.Fixed = false
		}
		for {
			idx := pickMaxCrossingsLayer(g)
			if idx < 0 {
				break
			}
			fixLayer(g.Layers[idx], opts.WeightPolicy, opts.BalancedWeight)
			xing.UpdateCrossingsForLayer(g, idx)
			terminated, err := ctx.endOfIteration(nil)
			if err != nil {
				return err
			}
			if terminated {
				return nil
			}

			for l := idx + 1; l < len(g.Layers); l++ {
				if g.Layers[l].Fixed {
					continue
				}
				sweepLayer(g.Layers[l], downNeighbourPositions, barycenterWeight, opts.WeightPolicy)
				xing.UpdateCrossingsForLayer(g, l)
				terminated, err := ctx.endOfIteration(nil)
				if err != nil {
					return err
				}
				if terminated {
					return nil
				}
			}
			for l := idx - 1; l >= 0; l-- {
				if g.Layers[l].Fixed {
					continue
				}
				sweepLayer(g.Layers[l], upNeighbourPositions, barycenterWeight, opts.WeightPolicy)
				xing.UpdateCrossingsForLayer(g, l)
				terminated, err := ctx.endOfIteration(nil)
				if err != nil {
					return err
				}
				if terminated {
					return nil
				}
			}
		}
		if ctx.endOfPass() {
			return nil
		}
	}
}
