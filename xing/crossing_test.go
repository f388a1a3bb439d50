package xing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocrossmin/crossmin/layered"
	"github.com/gocrossmin/crossmin/xing"
)

// k22 builds the K2,2 instance: two layers of two nodes each, all four
// cross edges present, minimum crossings 1.
func k22(t *testing.T) (*layered.Graph, map[string]*layered.Node) {
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
	return g, map[string]*layered.Node{"a0": a0, "a1": a1, "b0": b0, "b1": b1}
}

func TestUpdateAllCrossings_K22_IdentityOrderHasOneCrossing(t *testing.T) {
	g, _ := k22(t)
	xing.UpdateAllCrossings(g)
	// a0-b0 & a1-b1 run parallel; a0-b1 & a1-b0 is the one crossing pair.
	assert.Equal(t, 1, xing.NumberOfCrossings(g))
	assert.Equal(t, 1, xing.MaxEdgeCrossings(g))
}

func TestUpdateAllCrossings_PathGraphHasZeroCrossings(t *testing.T) {
	g := layered.NewGraph("path", 3)
	n0, _ := g.AddNode("0", 0)
	n1, _ := g.AddNode("1", 1)
	n2, _ := g.AddNode("2", 2)
	g.FinalizeLayers()
	_, err := g.AddEdgeBetween(n0, n1)
	require.NoError(t, err)
	_, err = g.AddEdgeBetween(n1, n2)
	require.NoError(t, err)
	xing.UpdateAllCrossings(g)
	assert.Equal(t, 0, xing.NumberOfCrossings(g))
	assert.Equal(t, 0, xing.MaxEdgeCrossings(g))
}

func TestUpdateCrossingsForLayer_MatchesUpdateAllCrossings(t *testing.T) {
	g, nodes := k22(t)
	xing.UpdateAllCrossings(g)

	require.NoError(t, g.MoveNode(nodes["b0"], 1))
	xing.UpdateCrossingsForLayer(g, 0)
	want := xing.NumberOfCrossings(g)

	xing.UpdateAllCrossings(g)
	got := xing.NumberOfCrossings(g)
	assert.Equal(t, want, got)
}

// reversedThreeByThree builds the two-layer, 3-node scenario of 
// scenario 4: edges 0-2, 1-1, 2-0, three crossings initially.
func reversedThreeByThree(t *testing.T) (*layered.Graph, []*layered.Node, []*layered.Node) {
	t.Helper()
	g := layered.NewGraph("rev3", 2)
	p := make([]*layered.Node, 3)
	q := make([]*layered.Node, 3)
	for i := 0; i < 3; i++ {
		p[i], _ = g.AddNode("p", 0)
		q[i], _ = g.AddNode("q", 1)
	}
	g.FinalizeLayers()
	for i := 0; i < 3; i++ {
		_, err := g.AddEdgeBetween(p[i], q[2-i])
		require.NoError(t, err)
	}
	return g, p, q
}

func TestUpdateAllCrossings_ReversedThreeByThreeHasThreeCrossings(t *testing.T) {
	g, _, _ := reversedThreeByThree(t)
	xing.UpdateAllCrossings(g)
	assert.Equal(t, 3, xing.NumberOfCrossings(g))
}

func TestNodeCrossings_SwapDeltaCorrectness(t *testing.T) {
	g, p, _ := reversedThreeByThree(t)
	xing.UpdateAllCrossings(g)
	before := xing.NumberOfCrossings(g)

	u, v := p[0], p[1] // adjacent on layer 0, u currently left of v
	delta := xing.NodeCrossings(u, v) - xing.NodeCrossings(v, u)

	require.NoError(t, g.MoveNode(v, 0)) // swap the adjacent pair
	xing.UpdateAllCrossings(g)
	after := xing.NumberOfCrossings(g)

	assert.Equal(t, -delta, after-before)
}

func TestTotalStretch_SingleNodeLayersContributeZero(t *testing.T) {
	g := layered.NewGraph("path", 2)
	a, _ := g.AddNode("a", 0)
	b, _ := g.AddNode("b", 1)
	g.FinalizeLayers()
	_, err := g.AddEdgeBetween(a, b)
	require.NoError(t, err)
	assert.Equal(t, 0.0, xing.TotalStretch(g))
	assert.Equal(t, 0.0, xing.BottleneckStretch(g))
}

func TestTotalStretch_OffsetPositionsAccumulate(t *testing.T) {
	g := layered.NewGraph("g", 2)
	a0, _ := g.AddNode("a0", 0)
	_, _ = g.AddNode("a1", 0)
	_, _ = g.AddNode("b0", 1)
	b1, _ := g.AddNode("b1", 1)
	g.FinalizeLayers()
	_, err := g.AddEdgeBetween(a0, b1)
	require.NoError(t, err)
	// a0 is at position 0/1 = 0, b1 is at position 1/1 = 1 -> stretch 1.
	assert.InDelta(t, 1.0, xing.TotalStretch(g), 1e-9)
	assert.InDelta(t, 1.0, xing.BottleneckStretch(g), 1e-9)
}
