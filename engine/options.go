package engine

import (
	"time"

	"github.com/gocrossmin/crossmin/heuristic"
	"github.com/gocrossmin/crossmin/tracker"
)

// Options configures one engine.Run call: which heuristic to run, its
// tuning knobs, the iteration/runtime budget, and where to send trace
// output.
type Options struct {
	Heuristic heuristic.Kind
	Tuning    heuristic.Options

	Seed int64

	// MaxIterations/MaxRuntime are pointers so a configured-but-zero
	// budget is distinguishable from "not
	// configured" (nil), which enables standard termination instead.
	MaxIterations    *int
	MaxRuntime       *time.Duration
	CaptureIteration int
	TraceFreq        int

	// PostProcess runs the swapping post-processor after the main
	// heuristic completes.
	PostProcess bool

	// ParetoAxes selects the two objectives the returned Result's Pareto
	// frontier point is measured against: one of bottleneck/total
	// crossings, stretch/total crossings, or bottleneck crossings/total
	// stretch. Nil disables frontier tracking, leaving Result.Frontier
	// empty.
	ParetoAxes *[2]tracker.Objective

	// Capture, when set, is invoked whenever the iteration controller's
	// configured CaptureIteration is reached, with the graph's current
	// ordering already in place; it is the hook the CLI uses to dump a
	// side file.
	Capture func() error

	Logger Logger
}
