package tracker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocrossmin/crossmin/layered"
	"github.com/gocrossmin/crossmin/tracker"
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

func TestConsider_OnlyStrictImprovementOverwrites(t *testing.T) {
	g := buildK22(t)
	xing.UpdateAllCrossings(g)
	tr := tracker.New()

	assert.True(t, tr.Consider(tracker.TotalCrossings, 3, 0, g))
	assert.False(t, tr.Consider(tracker.TotalCrossings, 3, 1, g), "a tie must not count as improvement")
	assert.True(t, tr.Consider(tracker.TotalCrossings, 1, 2, g))

	best := tr.Best(tracker.TotalCrossings)
	require.NotNil(t, best)
	assert.Equal(t, 1.0, best.Value)
	assert.Equal(t, 2, best.Iteration)
	require.NotNil(t, best.Ordering)
}

func TestBest_UnobservedObjectiveIsNil(t *testing.T) {
	tr := tracker.New()
	assert.Nil(t, tr.Best(tracker.FavoredCrossings))
}

func TestObserveGraph_ReportsImprovedObjectives(t *testing.T) {
	g := buildK22(t)
	xing.UpdateAllCrossings(g)
	tr := tracker.New()

	first := tr.ObserveGraph(g, 0)
	assert.ElementsMatch(t, []tracker.Objective{
		tracker.TotalCrossings, tracker.BottleneckCrossings,
		tracker.TotalStretch, tracker.BottleneckStretch,
	}, first)

	second := tr.ObserveGraph(g, 1)
	assert.Empty(t, second, "no objective improved when nothing changed")
}

func TestFrontier_DominatedPointIsRejected(t *testing.T) {
	g := buildK22(t)
	xing.UpdateAllCrossings(g)
	f := tracker.NewFrontier()

	assert.True(t, f.Offer(2, 2, 0, g))
	assert.False(t, f.Offer(3, 3, 1, g), "strictly worse on both axes must not be added")
	assert.Equal(t, 1, f.Len())
}

func TestFrontier_NonDominatedPointsBothSurvive(t *testing.T) {
	g := buildK22(t)
	xing.UpdateAllCrossings(g)
	f := tracker.NewFrontier()

	assert.True(t, f.Offer(1, 5, 0, g))
	assert.True(t, f.Offer(5, 1, 1, g))
	assert.Equal(t, 2, f.Len())
}

func TestFrontier_NewPointEvictsDominated(t *testing.T) {
	g := buildK22(t)
	xing.UpdateAllCrossings(g)
	f := tracker.NewFrontier()

	assert.True(t, f.Offer(3, 3, 0, g))
	assert.True(t, f.Offer(1, 1, 1, g), "strictly better on both axes must replace the old point")
	assert.Equal(t, 1, f.Len())
	assert.Equal(t, 1.0, f.Points()[0].A)
}
