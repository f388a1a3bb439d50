package dotfmt

import (
	"bufio"
	"fmt"
	"io"

	"github.com/goccy/go-graphviz/cgraph"

	"github.com/gocrossmin/crossmin/ioformat"
	"github.com/gocrossmin/crossmin/layered"
)

// EdgeName is a (tail, head) pair of node names read from a dot file.
// Direction is discarded by every caller in this module: the loader has
// the paired ord file supply layer membership, so edges are reclassified
// into Up/Down purely by layer number, regardless of which way the dot
// file's arrow pointed.
type EdgeName struct {
	A, B string
}

// Read parses a dot stream into its graph name and edge list.
func Read(r io.Reader) (name string, edges []EdgeName, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ioformat.ErrIOFailure, err)
	}

	g, err := cgraph.ParseBytes(data)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ioformat.ErrMalformedInput, err)
	}
	defer g.Close()

	name = g.Name()
	for n := g.FirstNode(); n != nil; n = g.NextNode(n) {
		for e := g.FirstEdge(n); e != nil; e = g.NextEdge(e, n) {
			// cgraph's per-node edge iteration visits an edge once from
			// each endpoint; keep it only when n is the tail so every
			// edge is reported exactly once.
			if e.Tail() != n {
				continue
			}
			edges = append(edges, EdgeName{A: e.Tail().Name(), B: e.Head().Name()})
		}
	}
	return name, edges, nil
}

// Write emits g as a directed dot graph: one node statement per node (so
// isolated nodes round-trip even without an incident edge) followed by
// one edge statement per edge, written Down -> Up. Writing stays a plain
// text builder (the cgraph dependency earns its place on the read side,
// where a real grammar is worth having; the write side is a fixed,
// trivial template).
func Write(w io.Writer, g *layered.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "digraph %s {\n", quoteIfNeeded(g.Name)); err != nil {
		return fmt.Errorf("%w: %v", ioformat.ErrIOFailure, err)
	}
	for _, n := range g.Nodes {
		if _, err := fmt.Fprintf(bw, "  %s;\n", quoteIfNeeded(n.Name)); err != nil {
			return fmt.Errorf("%w: %v", ioformat.ErrIOFailure, err)
		}
	}
	for _, e := range g.Edges {
		if _, err := fmt.Fprintf(bw, "  %s -> %s;\n", quoteIfNeeded(e.Down.Name), quoteIfNeeded(e.Up.Name)); err != nil {
			return fmt.Errorf("%w: %v", ioformat.ErrIOFailure, err)
		}
	}
	if _, err := fmt.Fprint(bw, "}\n"); err != nil {
		return fmt.Errorf("%w: %v", ioformat.ErrIOFailure, err)
	}
	return bw.Flush()
}

func quoteIfNeeded(name string) string {
	for _, r := range name {
		if !(r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return fmt.Sprintf("%q", name)
		}
	}
	return name
}
