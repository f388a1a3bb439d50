package heuristic

import (
	"github.com/gocrossmin/crossmin/layered"
	"github.com/gocrossmin/crossmin/xing"
)

// pickMaxCrossingsNode returns the unfixed node whose incident edges
// accumulate the most crossings, tie-breaking on lowest id (the order
// g.Nodes is already in), or nil if every node is fixed.
func pickMaxCrossingsNode(g *layered.Graph) *layered.Node {
	var best *layered.Node
	bestCrossings := -1
	for _, n := range g.Nodes {
		if n.Fixed {
			continue
		}
		if c := n.Crossings(); c > bestCrossings {
			bestCrossings = c
			best = n
		}
	}
	return best
}

// RunMCN drives maximum-crossings-node heuristic:
// repeatedly pick the unfixed node with the most crossings, sift it to
// minimise total crossings, and fix it; a pass ends once every node is
// fixed.
func RunMCN(ctx *Context) error {
	g := ctx.Graph
	xing.UpdateAllCrossings(g)

	for {
		for _, n := range g.Nodes {
			n.Fixed = false
		}
		for {
			n := pickMaxCrossingsNode(g)
			if n == nil {
				break
			}
			siftNode(g, n, totalCrossingsScore(g))
			n.Fixed = true
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
