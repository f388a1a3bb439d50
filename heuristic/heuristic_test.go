package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocrossmin/crossmin/heuristic"
	"github.com/gocrossmin/crossmin/internal/layeredgen"
	"github.com/gocrossmin/crossmin/iterctl"
	"github.com/gocrossmin/crossmin/sortutil"
	"github.com/gocrossmin/crossmin/tracker"
	"github.com/gocrossmin/crossmin/xing"
)

// Scenario 1: path graph 0->1->2, running bary stays at 0 crossings.
func TestScenario1_PathGraph_BaryStaysAtZeroCrossings(t *testing.T) {
	g := layeredgen.Path(3)
	ctl := iterctl.New(iterctl.Options{CaptureIteration: -1})
	ctx := heuristic.NewContext(g, ctl, sortutil.RNGFromSeed(1))

	err := heuristic.Run(ctx, heuristic.Barycenter, heuristic.Options{})
	require.NoError(t, err)

	best := ctx.Tracker.Best(tracker.TotalCrossings)
	require.NotNil(t, best)
	assert.Equal(t, 0.0, best.Value)
	assert.Equal(t, 0, xing.NumberOfCrossings(g))
}

// Scenario 2: K2,2, bary and median both reach the minimum of 1 crossing.
func TestScenario2_K22_BaryReachesMinimum(t *testing.T) {
	g := layeredgen.CompleteBipartite(2, 2)
	ctl := iterctl.New(iterctl.Options{CaptureIteration: -1})
	ctx := heuristic.NewContext(g, ctl, sortutil.RNGFromSeed(1))

	err := heuristic.Run(ctx, heuristic.Barycenter, heuristic.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, xing.NumberOfCrossings(g))
}

func TestScenario2_K22_MedianReachesMinimum(t *testing.T) {
	g := layeredgen.CompleteBipartite(2, 2)
	ctl := iterctl.New(iterctl.Options{CaptureIteration: -1})
	ctx := heuristic.NewContext(g, ctl, sortutil.RNGFromSeed(1))

	err := heuristic.Run(ctx, heuristic.Median, heuristic.Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, xing.NumberOfCrossings(g))
}

// Scenario 3: three layers of three nodes, identity matchings, zero
// crossings, unchanged by any heuristic.
func TestScenario3_IdentityChain_RemainsZeroCrossingsUnderEveryHeuristic(t *testing.T) {
	kinds := []heuristic.Kind{
		heuristic.Median, heuristic.Barycenter, heuristic.Sifting,
		heuristic.MCN, heuristic.MCE, heuristic.MCES, heuristic.MSE,
	}
	for _, kind := range kinds {
		g := layeredgen.IdentityMatchingChain(3, 3)
		ctl := iterctl.New(iterctl.Options{CaptureIteration: -1})
		ctx := heuristic.NewContext(g, ctl, sortutil.RNGFromSeed(1))

		err := heuristic.Run(ctx, kind, heuristic.Options{})
		require.NoError(t, err)
		assert.Equal(t, 0, xing.NumberOfCrossings(g), "kind=%s", kind)
	}
}

// Scenario 4: two layers of 3 nodes with the fully reversed matching (3
// crossings initially); bary with left weight adjustment and sifting both
// reach 0 after the first sweep/pass.
func TestScenario4_ReversedMatching_BaryReachesZero(t *testing.T) {
	g := layeredgen.ReversedMatching(3)
	require.Equal(t, 3, func() int {
		xing.UpdateAllCrossings(g)
		return xing.NumberOfCrossings(g)
	}())

	ctl := iterctl.New(iterctl.Options{CaptureIteration: -1})
	ctx := heuristic.NewContext(g, ctl, sortutil.RNGFromSeed(1))
	err := heuristic.Run(ctx, heuristic.Barycenter, heuristic.Options{WeightPolicy: heuristic.WeightLeft})
	require.NoError(t, err)
	assert.Equal(t, 0, xing.NumberOfCrossings(g))
}

func TestScenario4_ReversedMatching_SiftingReachesZero(t *testing.T) {
	g := layeredgen.ReversedMatching(3)
	ctl := iterctl.New(iterctl.Options{CaptureIteration: -1})
	ctx := heuristic.NewContext(g, ctl, sortutil.RNGFromSeed(1))

	err := heuristic.Run(ctx, heuristic.Sifting, heuristic.Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, xing.NumberOfCrossings(g))
}

// Layer invariant: every heuristic preserves it after a run.
func TestEveryHeuristic_PreservesLayerInvariant(t *testing.T) {
	kinds := []heuristic.Kind{
		heuristic.Median, heuristic.Barycenter, heuristic.ModifiedBarycenter,
		heuristic.Sifting, heuristic.MCN, heuristic.MCE, heuristic.MCES, heuristic.MSE,
	}
	for _, kind := range kinds {
		g := layeredgen.ReversedMatching(3)
		ctl := iterctl.New(iterctl.Options{CaptureIteration: -1})
		ctx := heuristic.NewContext(g, ctl, sortutil.RNGFromSeed(3))

		err := heuristic.Run(ctx, kind, heuristic.Options{})
		require.NoError(t, err)
		assert.NoError(t, g.Validate(), "kind=%s", kind)
	}
}

// Swap post-processor: never increases total crossings, end to end.
func TestSwapPostProcessor_NeverIncreasesCrossings(t *testing.T) {
	g := layeredgen.ReversedMatching(3)
	xing.UpdateAllCrossings(g)
	before := xing.NumberOfCrossings(g)

	ctl := iterctl.New(iterctl.Options{CaptureIteration: -1})
	ctx := heuristic.NewContext(g, ctl, sortutil.RNGFromSeed(1))
	err := heuristic.RunSwapPostProcessor(ctx)
	require.NoError(t, err)

	after := xing.NumberOfCrossings(g)
	assert.LessOrEqual(t, after, before)
	assert.NoError(t, g.Validate())
}

// MDS preprocessor leaves the layer invariant intact.
func TestMDSPreprocessor_PreservesLayerInvariant(t *testing.T) {
	g := layeredgen.ReversedMatching(5)
	ctl := iterctl.New(iterctl.Options{CaptureIteration: -1})
	ctx := heuristic.NewContext(g, ctl, sortutil.RNGFromSeed(1))
	heuristic.RunPreprocessor(ctx, heuristic.MDS)
	assert.NoError(t, g.Validate())
}
