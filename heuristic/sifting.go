package heuristic

import (
	"github.com/gocrossmin/crossmin/layered"
	"github.com/gocrossmin/crossmin/sortutil"
	"github.com/gocrossmin/crossmin/xing"
)

// siftOrder builds the node-visiting order for one sifting pass, per the
// SiftOrder configured.
func siftOrder(ctx *Context, opts Options) []*layered.Node {
	switch opts.SiftOrder {
	case SiftByDegree:
		return sortutil.SortNodesByDegree(ctx.Graph.Nodes)
	case SiftByRandom:
		perm := sortutil.PermuteInts(len(ctx.Graph.Nodes), ctx.RNG)
		out := make([]*layered.Node, len(perm))
		for i, id := range perm {
			out[i] = ctx.Graph.NodeByID(id)
		}
		return out
	default: // SiftByLayer
		out := make([]*layered.Node, 0, len(ctx.Graph.Nodes))
		for _, layer := range ctx.Graph.Layers {
			out = append(out, layer.Nodes...)
		}
		return out
	}
}

// RunSifting drives sifting heuristic: visit every node in
// the configured order, trying each possible position on its layer and
// settling at the one minimising total crossings, until a pass makes no
// improvement.
func RunSifting(ctx *Context, opts Options) error {
	g := ctx.Graph
	xing.UpdateAllCrossings(g)

	for {
		for _, n := range siftOrder(ctx, opts) {
			if opts.SiftByBottleneck {
				siftNode(g, n, nodeMaxCrossingsScore(n))
			} else {
				siftNode(g, n, totalCrossingsScore(g))
			}
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
