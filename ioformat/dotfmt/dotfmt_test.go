package dotfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocrossmin/crossmin/internal/layeredgen"
	"github.com/gocrossmin/crossmin/ioformat/dotfmt"
)

func TestWrite_EmitsOneStatementPerNodeAndEdge(t *testing.T) {
	g := layeredgen.Path(3)

	var buf bytes.Buffer
	require.NoError(t, dotfmt.Write(&buf, g))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph bipartite {\n") || strings.HasPrefix(out, "digraph path {\n"))
	for _, n := range g.Nodes {
		assert.Contains(t, out, n.Name+";")
	}
	for _, e := range g.Edges {
		assert.Contains(t, out, e.Down.Name+" -> "+e.Up.Name+";")
	}
}

func TestWriteThenRead_RecoversGraphNameAndEdgeSet(t *testing.T) {
	g := layeredgen.Path(3)

	var buf bytes.Buffer
	require.NoError(t, dotfmt.Write(&buf, g))

	name, edges, err := dotfmt.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Name, name)
	require.Len(t, edges, len(g.Edges))

	got := make(map[[2]string]bool, len(edges))
	for _, e := range edges {
		got[[2]string{e.A, e.B}] = true
	}
	for _, e := range g.Edges {
		assert.True(t, got[[2]string{e.Down.Name, e.Up.Name}], "missing edge %s -> %s", e.Down.Name, e.Up.Name)
	}
}
