package heuristic

import (
	"github.com/gocrossmin/crossmin/layered"
	"github.com/gocrossmin/crossmin/xing"
)

// RunSwapPostProcessor drives swapping post-processor:
// repeat even/odd rounds until neither makes an improvement. The same
// parity that selects which layers a round visits (even-indexed layers on
// an even round, odd-indexed on an odd round) also selects where each
// layer's pair scan starts: an even round pairs positions (0,1),(2,3),...,
// an odd round pairs (1,2),(3,4),.... A swap is performed iff
// node_crossings(u,v) - node_crossings(v,u) > 0.
//
// Unlike the source, crossing caches are
// refreshed incrementally via UpdateCrossingsForLayer after every swap
// rather than left to raw counter subtraction, so BilayerCrossings stays
// consistent with TotalCrossings for any caller inspecting it mid-run; the
// externally observable crossing delta is identical either way.
func RunSwapPostProcessor(ctx *Context) error {
	g := ctx.Graph
	xing.UpdateAllCrossings(g)

	for {
		anyImproved := false
		for parity := 0; parity < 2; parity++ {
			for li, layer := range g.Layers {
				if li%2 != parity {
					continue
				}
				for i := parity; i+1 < len(layer.Nodes); i += 2 {
					u, v := layer.Nodes[i], layer.Nodes[i+1]
					delta := xing.NodeCrossings(u, v) - xing.NodeCrossings(v, u)
					if delta <= 0 {
						continue
					}
					if err := moveSwap(ctx, v, i, li); err != nil {
						return err
					}
					anyImproved = true
					terminated, err := ctx.endOfIteration(nil)
					if err != nil {
						return err
					}
					if terminated {
						return nil
					}
				}
			}
		}
		if ctx.endOfPass() {
			return nil
		}
		if !anyImproved {
			return nil
		}
	}
}

func moveSwap(ctx *Context, v *layered.Node, target int, layerIdx int) error {
	if err := ctx.Graph.MoveNode(v, target); err != nil {
		return err
	}
	xing.UpdateCrossingsForLayer(ctx.Graph, layerIdx)
	return nil
}
