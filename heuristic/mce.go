package heuristic

import (
	"github.com/gocrossmin/crossmin/layered"
	"github.com/gocrossmin/crossmin/xing"
)

// pickMaxCrossingsEdge returns the unfixed edge with the most crossings,
// tie-breaking on lowest id, or nil if every edge is fixed.
func pickMaxCrossingsEdge(g *layered.Graph) *layered.Edge {
	var best *layered.Edge
	bestCrossings := -1
	for _, e := range g.Edges {
		if e.Fixed {
			continue
		}
		if e.Crossings > bestCrossings {
			bestCrossings = e.Crossings
			best = e
		}
	}
	return best
}

func allNodesFixed(g *layered.Graph) bool {
	for _, n := range g.Nodes {
		if !n.Fixed {
			return false
		}
	}
	return true
}

func allEdgesFixed(g *layered.Graph) bool {
	for _, e := range g.Edges {
		if !e.Fixed {
			return false
		}
	}
	return true
}

// RunMCE drives maximum-crossings-edge heuristic. It
// repeatedly picks the unfixed edge with the most crossings and sifts its
// endpoints (subject to their own Fixed flags): with totalObjective false
// (mce) each endpoint is sifted to minimise the maximum crossings of any
// edge incident to it; with totalObjective true (mce_s) each is sifted to
// minimise total crossings. The MCEOneNode policy sifts only the endpoint
// with the larger node-crossing count. The inner loop ends per
// opts.MCEEndOfPass: MCENodes/MCEOneNode when every node is fixed,
// MCEEdges when every edge is fixed, MCEEarly as soon as the
// just-processed edge's two endpoints are both fixed.
func RunMCE(ctx *Context, opts Options, totalObjective bool) error {
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
			e := pickMaxCrossingsEdge(g)
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
				if totalObjective {
					siftNode(g, n, totalCrossingsScore(g))
				} else {
					siftNode(g, n, nodeMaxCrossingsScore(n))
				}
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
			default: // MCENodes, MCEOneNode
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
