package heuristic

import (
	"github.com/gocrossmin/crossmin/layered"
	"github.com/gocrossmin/crossmin/xing"
)

// pickMaxStretchEdge returns the unfixed edge with the most stretch,
// tie-breaking on lowest id, or nil if every edge is fixed.
func pickMaxStretchEdge(g *layered.Graph) *layered.Edge {
	var best *layered.Edge
	bestStretch := -1.0
	for _, e := range g.Edges {
		if e.Fixed {
			continue
		}
		if s := xing.EdgeStretch(e, g); s > bestStretch {
			bestStretch = s
			best = e
		}
	}
	return best
}

// RunMSE drives maximum-stretch-edge heuristic: same shape
// as mce, but the selected edge is the one with maximum stretch and each
// sifted endpoint minimises total stretch.
func RunMSE(ctx *Context, opts Options) error {
	g := ctx.Graph
	xing.UpdateAllCrossings(g)

	for {
		for _, n := range g.Nodes {
			n.Fixed = false
		}
		for _, e := range g.Edges {
			e.Fixed = false
		}
		for {
			e := pickMaxStretchEdge(g)
			if e == nil {
				break
			}

			var endpoints []*layered.Node
			if opts.MCEEndOfPass == MCEOneNode {
				if e.Up.Crossings() >= e.Down.Crossings() {
					endpoints = []*layered.Node{e.Up}
				} else {
					endpoints = []*layered.Node{e.Down}
				}
			} else {
				if !e.Up.Fixed {
					endpoints = append(endpoints, e.Up)
				}
				if !e.Down.Fixed {
					endpoints = append(endpoints, e.Down)
				}
			}

			for _, n := range endpoints {
				siftNode(g, n, totalStretchScore(g))
				n.Fixed = true
				terminated, err := ctx.endOfIteration(nil)
				if err != nil {
					return err
				}
				if terminated {
					return nil
				}
			}
			e.Fixed = true

			var done bool
			switch opts.MCEEndOfPass {
			case MCEEdges:
				done = allEdgesFixed(g)
			case MCEEarly:
				done = e.Up.Fixed && e.Down.Fixed
			default:
				done = allNodesFixed(g)
			}
			if done {
				break
			}
		}
		if ctx.endOfPass() {
			return nil
		}
	}
}
