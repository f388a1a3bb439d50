package ioformat

import (
	"fmt"
	"io"

	"github.com/gocrossmin/crossmin/ioformat/dotfmt"
	"github.com/gocrossmin/crossmin/ioformat/ord"
	"github.com/gocrossmin/crossmin/layered"
)

// LoadDotOrd builds a Graph from a dot+ord pair: the ord stream supplies
// node identity and per-layer ordering, the dot stream supplies the edge
// list. Edge direction from the dot file is discarded; each
// edge is reclassified into Up/Down from its endpoints' layer numbers. An
// edge naming a node absent from the ord file is fatal, matching sgf's
// treatment of an edge referencing an unknown node.
func LoadDotOrd(dotR, ordR io.Reader) (*layered.Graph, []string, error) {
	name, edges, err := dotfmt.Read(dotR)
	if err != nil {
		return nil, nil, err
	}
	layerNames, comments, err := ord.Read(ordR)
	if err != nil {
		return nil, nil, err
	}

	g := layered.NewGraph(name, len(layerNames))
	byName := make(map[string]*layered.Node)
	staged := NewStage()
	for layerIdx, names := range layerNames {
		for _, nm := range names {
			if err := staged.AddNode(nm); err != nil {
				return nil, nil, err
			}
			n, err := g.AddNode(nm, layerIdx)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: node %q: %v", ErrStructuralViolation, nm, err)
			}
			byName[nm] = n
		}
	}
	g.FinalizeLayers()

	var warnings []string
	for _, e := range edges {
		a, ok1 := byName[e.A]
		b, ok2 := byName[e.B]
		if !ok1 || !ok2 {
			return nil, nil, fmt.Errorf("%w: edge %s-%s references a node missing from the ord file", ErrStructuralViolation, e.A, e.B)
		}
		if err := staged.AddEdge(e.A, e.B); err != nil {
			return nil, nil, err
		}
		if _, err := g.AddEdgeBetween(a, b); err != nil {
			return nil, nil, fmt.Errorf("%w: edge %s-%s: %v", ErrStructuralViolation, e.A, e.B, err)
		}
	}

	g.Comments = comments
	g.CountIsolatedNodes()
	return g, warnings, nil
}

// WriteDotOrd writes g as a dot+ord pair: dotW gets the edge list and
// graph name, ordW gets the comments and per-layer name ordering.
func WriteDotOrd(dotW, ordW io.Writer, g *layered.Graph) error {
	if err := dotfmt.Write(dotW, g); err != nil {
		return err
	}
	names := make([][]string, len(g.Layers))
	for i, layer := range g.Layers {
		for _, n := range layer.Nodes {
			names[i] = append(names[i], n.Name)
		}
	}
	return ord.Write(ordW, names, g.Comments)
}
