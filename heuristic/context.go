package heuristic

import (
	"math/rand"

	"github.com/gocrossmin/crossmin/iterctl"
	"github.com/gocrossmin/crossmin/layered"
	"github.com/gocrossmin/crossmin/tracker"
	"github.com/gocrossmin/crossmin/xing"
)

// Context is the single process-local bundle of shared state a heuristic
// run owns exclusively for its duration: the graph, the
// best-so-far tracker, the iteration controller, and the PRNG stream.
type Context struct {
	Graph   *layered.Graph
	Tracker *tracker.Tracker
	Ctl     *iterctl.Controller
	RNG     *rand.Rand

	// Capture, when set, is invoked by every internal end_of_iteration
	// call (the capture-iteration side-file hook of ); the
	// controller itself decides whether the configured iteration has
	// actually been reached before calling it.
	Capture func() error
}

// NewContext wires a fresh Context around an already-loaded, already
// crossing-initialised graph.
func NewContext(g *layered.Graph, ctl *iterctl.Controller, rng *rand.Rand) *Context {
	return &Context{Graph: g, Tracker: tracker.New(), Ctl: ctl, RNG: rng}
}

func (c *Context) measures() iterctl.Measures {
	return iterctl.Measures{
		TotalCrossings:      xing.NumberOfCrossings(c.Graph),
		BottleneckCrossings: xing.MaxEdgeCrossings(c.Graph),
		TotalStretch:        xing.TotalStretch(c.Graph),
		BottleneckStretch:   xing.BottleneckStretch(c.Graph),
	}
}

// endOfIteration observes the tracker against the current graph state and
// forwards to the controller, the shared "one unit of work" transition
// every heuristic calls.
func (c *Context) endOfIteration(capture func() error) (bool, error) {
	if capture == nil {
		capture = c.Capture
	}
	improved := len(c.Tracker.ObserveGraph(c.Graph, c.Ctl.Iteration())) > 0
	return c.Ctl.EndOfIteration(c.measures(), improved, capture)
}

// endOfPass forwards to the controller's pass-boundary termination check.
func (c *Context) endOfPass() bool {
	return c.Ctl.EndOfPass(c.measures())
}

// Run dispatches to the named heuristic's driver loop.
func Run(ctx *Context, kind Kind, opts Options) error {
	if opts.Preprocessor != NoPreprocessor {
		RunPreprocessor(ctx, opts.Preprocessor)
	}
	switch kind {
	case Median:
		return runSweep(ctx, opts, medianWeight)
	case Barycenter:
		return runSweep(ctx, opts, barycenterWeight)
	case ModifiedBarycenter:
		return RunModifiedBarycenter(ctx, opts)
	case Sifting:
		return RunSifting(ctx, opts)
	case MCN:
		return RunMCN(ctx)
	case MCE:
		return RunMCE(ctx, opts, false)
	case MCES:
		return RunMCE(ctx, opts, true)
	case MSE:
		return RunMSE(ctx, opts)
	default:
		return nil
	}
}
