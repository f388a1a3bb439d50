package heuristic

import (
	"github.com/gocrossmin/crossmin/layered"
	"github.com/gocrossmin/crossmin/sortutil"
)

// RunPreprocessor rewrites g's layer orderings once, before the main
// heuristic starts, per the preprocessor named.
func RunPreprocessor(ctx *Context, kind Preprocessor) {
	switch kind {
	case BFS:
		bfsPreorder(ctx.Graph)
	case DFS:
		dfsPreorder(ctx.Graph)
	case MDS:
		middleDegreeSort(ctx.Graph)
	}
}

// bfsPreorder assigns each node a weight equal to its breadth-first
// preorder number (treating up- and down-edges as undirected adjacency,
// visiting unvisited components in node-id order), then layer-sorts.
func bfsPreorder(g *layered.Graph) {
	visited := make([]bool, len(g.Nodes))
	counter := 0
	for _, start := range g.Nodes {
		if visited[start.ID] {
			continue
		}
		queue := []*layered.Node{start}
		visited[start.ID] = true
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			n.Weight = float64(counter)
			counter++
			for _, e := range n.UpEdges {
				if !visited[e.Up.ID] {
					visited[e.Up.ID] = true
					queue = append(queue, e.Up)
				}
			}
			for _, e := range n.DownEdges {
				if !visited[e.Down.ID] {
					visited[e.Down.ID] = true
					queue = append(queue, e.Down)
				}
			}
		}
	}
	for _, layer := range g.Layers {
		sortutil.SortLayerByWeight(layer)
	}
}

// dfsPreorder assigns each node a weight equal to its depth-first preorder
// number, using Node.Marked/PreorderNumber as scratch state, then
// layer-sorts.
func dfsPreorder(g *layered.Graph) {
	for _, n := range g.Nodes {
		n.Marked = false
	}
	counter := 0
	var visit func(n *layered.Node)
	visit = func(n *layered.Node) {
		n.Marked = true
		n.PreorderNumber = counter
		counter++
		for _, e := range n.UpEdges {
			if !e.Up.Marked {
				visit(e.Up)
			}
		}
		for _, e := range n.DownEdges {
			if !e.Down.Marked {
				visit(e.Down)
			}
		}
	}
	for _, n := range g.Nodes {
		if !n.Marked {
			visit(n)
		}
	}
	for _, n := range g.Nodes {
		n.Weight = float64(n.PreorderNumber)
	}
	for _, layer := range g.Layers {
		sortutil.SortLayerByWeight(layer)
	}
}

// middlePositions returns, for n items ranked most- to least-significant,
// the target slot each should land in so the most significant ends up in
// the middle, the second most significant adjacent to it, and so on,
// alternating left then right of centre.
func middlePositions(n int) []int {
	positions := make([]int, n)
	if n == 0 {
		return positions
	}
	mid := n / 2
	positions[0] = mid
	l, r := mid-1, mid+1
	for i := 1; i < n; i++ {
		if i%2 == 1 {
			positions[i] = l
			l--
		} else {
			positions[i] = r
			r++
		}
	}
	return positions
}

// middleDegreeSort implements mds preprocessor: sort each
// layer by degree, then assign weights so a subsequent stable sort places
// the largest-degree node in the middle, the second-largest adjacent to
// it, and so on.
func middleDegreeSort(g *layered.Graph) {
	for _, layer := range g.Layers {
		ascending := sortutil.SortNodesByDegree(layer.Nodes)
		n := len(ascending)
		descending := make([]*layered.Node, n)
		for i, node := range ascending {
			descending[n-1-i] = node
		}
		positions := middlePositions(n)
		for i, node := range descending {
			node.Weight = float64(positions[i])
		}
		sortutil.SortLayerByWeight(layer)
	}
}
