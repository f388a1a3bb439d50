package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocrossmin/crossmin/engine"
	"github.com/gocrossmin/crossmin/heuristic"
	"github.com/gocrossmin/crossmin/internal/layeredgen"
)

func intPtr(v int) *int                     { return &v }
func durPtr(v time.Duration) *time.Duration { return &v }

func TestRun_PathGraph_ZeroCrossingsViaBarycenter(t *testing.T) {
	g := layeredgen.Path(3)
	result, err := engine.Run(g, engine.Options{Heuristic: heuristic.Barycenter})
	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalCrossings)
	assert.NoError(t, g.Validate())
}

func TestRun_K22_BaryAndSiftingBothReachMinimum(t *testing.T) {
	for _, kind := range []heuristic.Kind{heuristic.Barycenter, heuristic.Median, heuristic.Sifting} {
		g := layeredgen.CompleteBipartite(2, 2)
		result, err := engine.Run(g, engine.Options{Heuristic: kind})
		require.NoError(t, err)
		assert.Equal(t, 1, result.TotalCrossings, "kind=%s", kind)
	}
}

func TestRun_PostProcessAfterMainHeuristic_DoesNotIncreaseCrossings(t *testing.T) {
	g := layeredgen.ReversedMatching(4)
	result, err := engine.Run(g, engine.Options{Heuristic: heuristic.MCN, PostProcess: true})
	require.NoError(t, err)
	assert.NoError(t, g.Validate())
	assert.GreaterOrEqual(t, result.TotalCrossings, 0)
}

// Scenario 6: runtime budget. max_runtime = 0 means the engine stops after
// at most one pass and reports a non-increasing best.
func TestRun_ZeroMaxRuntime_StopsAfterAtMostOnePass(t *testing.T) {
	g := layeredgen.RandomSparse([]int{40, 40, 40}, 1000, 99)
	result, err := engine.Run(g, engine.Options{
		Heuristic:  heuristic.Sifting,
		MaxRuntime: durPtr(0),
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, result.Passes, 1)
	require.NotNil(t, result.BestTotalCrossings)
	assert.GreaterOrEqual(t, result.BestTotalCrossings.Value, 0.0)
}

// The iteration budget is checked at pass boundaries, and one sifting pass
// is one iteration per node, so the run stops at the end of the first pass
// that reaches the limit.
func TestRun_MaxIterationsBudget_StopsAtFirstPassEndPastLimit(t *testing.T) {
	g := layeredgen.RandomSparse([]int{20, 20, 20}, 200, 7)
	result, err := engine.Run(g, engine.Options{
		Heuristic:     heuristic.Sifting,
		MaxIterations: intPtr(5),
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, result.Iterations, 5+len(g.Nodes))
}

func TestRun_CaptureHookFiresAtConfiguredIteration(t *testing.T) {
	g := layeredgen.CompleteBipartite(3, 3)
	fired := 0
	_, err := engine.Run(g, engine.Options{
		Heuristic:        heuristic.Sifting,
		CaptureIteration: 0,
		Capture:          func() error { fired++; return nil },
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fired)
}

func TestRun_TraceFrequencyInvokesLogger(t *testing.T) {
	g := layeredgen.CompleteBipartite(2, 2)
	rec := &recordingLogger{}
	_, err := engine.Run(g, engine.Options{
		Heuristic: heuristic.Sifting,
		TraceFreq: 1,
		Logger:    rec,
	})
	require.NoError(t, err)
	assert.NotZero(t, rec.debugCount)
	assert.NotZero(t, rec.infoCount)
}

func TestRun_RespectsSeedForReproducibleRandomSifting(t *testing.T) {
	opts := func() engine.Options {
		return engine.Options{
			Heuristic: heuristic.Sifting,
			Tuning:    heuristic.Options{SiftOrder: heuristic.SiftByRandom},
			Seed:      1234,
		}
	}
	g1 := layeredgen.RandomSparse([]int{10, 10, 10}, 60, 1)
	g2 := layeredgen.RandomSparse([]int{10, 10, 10}, 60, 1)

	r1, err := engine.Run(g1, opts())
	require.NoError(t, err)
	r2, err := engine.Run(g2, opts())
	require.NoError(t, err)

	assert.Equal(t, r1.TotalCrossings, r2.TotalCrossings)
}

type recordingLogger struct {
	debugCount int
	infoCount  int
}

func (r *recordingLogger) Debugw(string, ...interface{}) { r.debugCount++ }
func (r *recordingLogger) Infow(string, ...interface{})  { r.infoCount++ }
func (r *recordingLogger) Warnw(string, ...interface{})  {}
