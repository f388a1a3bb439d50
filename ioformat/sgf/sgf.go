package sgf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocrossmin/crossmin/ioformat"
	"github.com/gocrossmin/crossmin/layered"
)

// Read parses an sgf stream into a Graph. It returns any header-count
// mismatches as human-readable warnings alongside a nil error; the graph
// built from the actually-read nodes and edges is returned regardless of
// whether the header's declared counts matched.
func Read(r io.Reader) (*layered.Graph, []string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var comments []string
	header := ""
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "t ") {
			header = line
			break
		}
		if strings.HasPrefix(line, "c") {
			comments = append(comments, strings.TrimSpace(strings.TrimPrefix(line, "c")))
			continue
		}
		return nil, nil, fmt.Errorf("%w: expected comment or header line, got %q", ioformat.ErrMalformedInput, line)
	}
	if header == "" {
		return nil, nil, fmt.Errorf("%w: missing header line", ioformat.ErrMalformedInput)
	}

	var name string
	var declaredNodes, declaredEdges, declaredLayers int
	if _, err := fmt.Sscanf(header, "t %s %d %d %d", &name, &declaredNodes, &declaredEdges, &declaredLayers); err != nil {
		return nil, nil, fmt.Errorf("%w: bad header %q: %v", ioformat.ErrMalformedInput, header, err)
	}
	if declaredLayers <= 0 {
		return nil, nil, fmt.Errorf("%w: non-positive layer count %d", ioformat.ErrStructuralViolation, declaredLayers)
	}

	g := layered.NewGraph(name, declaredLayers)
	byID := make(map[int]*layered.Node)
	maxLayer := -1
	staged := ioformat.NewStage()

	line := ""
	haveLine := false
	for scanner.Scan() {
		line = strings.TrimSpace(scanner.Text())
		haveLine = true
		if line == "" {
			haveLine = false
			continue
		}
		if strings.HasPrefix(line, "e") {
			break
		}
		if !strings.HasPrefix(line, "n") {
			return nil, nil, fmt.Errorf("%w: expected node line, got %q", ioformat.ErrMalformedInput, line)
		}
		var id, layerIdx, position int
		if _, err := fmt.Sscanf(line, "n %d %d %d", &id, &layerIdx, &position); err != nil {
			return nil, nil, fmt.Errorf("%w: bad node line %q: %v", ioformat.ErrMalformedInput, line, err)
		}
		for layerIdx >= len(g.Layers) {
			g.Layers = append(g.Layers, &layered.Layer{Index: len(g.Layers)})
		}
		if err := staged.AddNode(strconv.Itoa(id)); err != nil {
			return nil, nil, err
		}
		n, err := g.AddNode(strconv.Itoa(id), layerIdx)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: node %d: %v", ioformat.ErrStructuralViolation, id, err)
		}
		if err := g.PlaceNode(n, position); err != nil {
			return nil, nil, fmt.Errorf("%w: node %d: %v", ioformat.ErrStructuralViolation, id, err)
		}
		byID[id] = n
		if layerIdx > maxLayer {
			maxLayer = layerIdx
		}
		haveLine = false
	}
	g.FinalizeLayers()

	var warnings []string
	if len(byID) != declaredNodes {
		warnings = append(warnings, fmt.Sprintf("header declared %d nodes, found %d", declaredNodes, len(byID)))
	}
	if maxLayer+1 != declaredLayers {
		warnings = append(warnings, fmt.Sprintf("header declared %d layers, found %d", declaredLayers, maxLayer+1))
	}

	edgeCount := 0
	for {
		if haveLine && line != "" {
			if !strings.HasPrefix(line, "e") {
				return nil, nil, fmt.Errorf("%w: expected edge line, got %q", ioformat.ErrMalformedInput, line)
			}
			var downID, upID int
			if _, err := fmt.Sscanf(line, "e %d %d", &downID, &upID); err != nil {
				return nil, nil, fmt.Errorf("%w: bad edge line %q: %v", ioformat.ErrMalformedInput, line, err)
			}
			down, ok1 := byID[downID]
			up, ok2 := byID[upID]
			if !ok1 || !ok2 {
				return nil, nil, fmt.Errorf("%w: edge %d-%d references an unknown node", ioformat.ErrStructuralViolation, downID, upID)
			}
			if err := staged.AddEdge(strconv.Itoa(downID), strconv.Itoa(upID)); err != nil {
				return nil, nil, err
			}
			if _, err := g.AddEdgeBetween(down, up); err != nil {
				return nil, nil, fmt.Errorf("%w: edge %d-%d: %v", ioformat.ErrStructuralViolation, downID, upID, err)
			}
			edgeCount++
		}
		if !scanner.Scan() {
			break
		}
		line = strings.TrimSpace(scanner.Text())
		haveLine = true
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ioformat.ErrIOFailure, err)
	}
	if edgeCount != declaredEdges {
		warnings = append(warnings, fmt.Sprintf("header declared %d edges, found %d", declaredEdges, edgeCount))
	}

	g.Comments = comments
	g.CountIsolatedNodes()
	return g, warnings, nil
}

// Write emits g in sgf format: g.Comments verbatim as "c " lines, the
// header line with g's actual counts, every node in Graph.Nodes order,
// then every edge as "e <down-id> <up-id>".
func Write(w io.Writer, g *layered.Graph) error {
	bw := bufio.NewWriter(w)
	for _, c := range g.Comments {
		if _, err := fmt.Fprintf(bw, "c %s\n", c); err != nil {
			return fmt.Errorf("%w: %v", ioformat.ErrIOFailure, err)
		}
	}
	if _, err := fmt.Fprintf(bw, "t %s %d %d %d\n", g.Name, len(g.Nodes), len(g.Edges), len(g.Layers)); err != nil {
		return fmt.Errorf("%w: %v", ioformat.ErrIOFailure, err)
	}
	for _, n := range g.Nodes {
		if _, err := fmt.Fprintf(bw, "n %d %d %d\n", n.ID, n.Layer, n.Position); err != nil {
			return fmt.Errorf("%w: %v", ioformat.ErrIOFailure, err)
		}
	}
	for _, e := range g.Edges {
		if _, err := fmt.Fprintf(bw, "e %d %d\n", e.Down.ID, e.Up.ID); err != nil {
			return fmt.Errorf("%w: %v", ioformat.ErrIOFailure, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ioformat.ErrIOFailure, err)
	}
	return nil
}
