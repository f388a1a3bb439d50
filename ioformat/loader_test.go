package ioformat_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocrossmin/crossmin/internal/layeredgen"
	"github.com/gocrossmin/crossmin/ioformat"
)

func TestWriteDotOrdThenLoad_PreservesLayersAndEdges(t *testing.T) {
	original := layeredgen.IdentityMatchingChain(3, 3)

	var dotBuf, ordBuf bytes.Buffer
	require.NoError(t, ioformat.WriteDotOrd(&dotBuf, &ordBuf, original))

	g, warnings, err := ioformat.LoadDotOrd(&dotBuf, &ordBuf)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.NoError(t, g.Validate())

	require.Equal(t, len(original.Layers), len(g.Layers))
	for i, layer := range original.Layers {
		require.Equal(t, len(layer.Nodes), len(g.Layers[i].Nodes))
		for j, n := range layer.Nodes {
			assert.Equal(t, n.Name, g.Layers[i].Nodes[j].Name)
		}
	}
	assert.Equal(t, len(original.Edges), len(g.Edges))
}

func TestLoadDotOrd_EdgeReferencingUnknownNodeIsFatal(t *testing.T) {
	dot := "digraph g {\n  a -> missing;\n}\n"
	ord := "0 { a }\n"

	_, _, err := ioformat.LoadDotOrd(bytes.NewReader([]byte(dot)), bytes.NewReader([]byte(ord)))
	require.Error(t, err)
	assert.ErrorIs(t, err, ioformat.ErrStructuralViolation)
}
