package snapshot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocrossmin/crossmin/layered"
	"github.com/gocrossmin/crossmin/snapshot"
	"github.com/gocrossmin/crossmin/xing"
)

func buildK22(t *testing.T) *layered.Graph {
	t.Helper()
	g := layered.NewGraph("k22", 2)
	a0, _ := g.AddNode("a0", 0)
	a1, _ := g.AddNode("a1", 0)
	b0, _ := g.AddNode("b0", 1)
	b1, _ := g.AddNode("b1", 1)
	g.FinalizeLayers()
	for _, pair := range [][2]*layered.Node{{a0, b0}, {a0, b1}, {a1, b0}, {a1, b1}} {
		_, err := g.AddEdgeBetween(pair[0], pair[1])
		require.NoError(t, err)
	}
	return g
}

// TestSnapshotRoundTrip covers the "snapshot round-trip" property of
// : save, permute, restore, update -> identical crossings to
// those captured at save time.
func TestSnapshotRoundTrip(t *testing.T) {
	g := buildK22(t)
	xing.UpdateAllCrossings(g)
	before := xing.NumberOfCrossings(g)
	saved := snapshot.Save(g)

	require.NoError(t, g.MoveNode(g.Layers[1].Nodes[0], 1))
	xing.UpdateAllCrossings(g)

	require.NoError(t, snapshot.Restore(g, saved))
	xing.UpdateAllCrossings(g)
	after := xing.NumberOfCrossings(g)

	assert.Equal(t, before, after)
	assert.NoError(t, g.Validate())
}

func TestRestore_RejectsMismatchedLayerCount(t *testing.T) {
	g := buildK22(t)
	ord := &snapshot.Ordering{Layers: make([][]int, 1)}
	err := snapshot.Restore(g, ord)
	assert.ErrorIs(t, err, snapshot.ErrUnknownNodeID)
}

func TestClone_IsIndependent(t *testing.T) {
	g := buildK22(t)
	ord := snapshot.Save(g)
	clone := ord.Clone()
	clone.Layers[0][0] = 99
	assert.NotEqual(t, ord.Layers[0][0], clone.Layers[0][0])
}
