package engine

import (
	"github.com/gocrossmin/crossmin/heuristic"
	"github.com/gocrossmin/crossmin/iterctl"
	"github.com/gocrossmin/crossmin/layered"
	"github.com/gocrossmin/crossmin/sortutil"
	"github.com/gocrossmin/crossmin/tracker"
	"github.com/gocrossmin/crossmin/xing"
)

// Run drives g through one heuristic run, owning the single process-local
// Context the run's duration. The graph is mutated in place;
// Result summarizes the outcome.
func Run(g *layered.Graph, opts Options) (Result, error) {
	xing.UpdateAllCrossings(g)

	log := opts.Logger
	if log == nil {
		log = noopLogger{}
	}

	ctl := iterctl.New(iterctl.Options{
		MaxIterations:    opts.MaxIterations,
		MaxRuntime:       opts.MaxRuntime,
		CaptureIteration: opts.CaptureIteration,
		TraceFreq:        opts.TraceFreq,
		OnTrace: func(e iterctl.TraceEvent) {
			log.Debugw("trace",
				"iteration", e.Iteration,
				"pass", e.Pass,
				"end_of_pass", e.EndOfPass,
				"total_crossings", e.Measures.TotalCrossings,
				"bottleneck_crossings", e.Measures.BottleneckCrossings,
				"total_stretch", e.Measures.TotalStretch,
				"bottleneck_stretch", e.Measures.BottleneckStretch,
			)
		},
	})

	ctx := heuristic.NewContext(g, ctl, sortutil.RNGFromSeed(opts.Seed))
	ctx.Capture = opts.Capture

	log.Infow("run starting", "heuristic", opts.Heuristic.String(), "graph", g.Name)
	if g.IsolatedNodeCount > 0 {
		log.Warnw("graph has isolated nodes", "count", g.IsolatedNodeCount)
	}

	if err := heuristic.Run(ctx, opts.Heuristic, opts.Tuning); err != nil {
		return Result{}, err
	}
	if opts.PostProcess {
		if err := heuristic.RunSwapPostProcessor(ctx); err != nil {
			return Result{}, err
		}
	}

	frontier := tracker.NewFrontier()
	if opts.ParetoAxes != nil {
		axes := *opts.ParetoAxes
		frontier.Offer(tracker.Value(axes[0], g), tracker.Value(axes[1], g), ctl.Iteration(), g)
	}

	log.Infow("run finished",
		"iterations", ctl.Iteration(),
		"passes", ctl.Pass(),
		"total_crossings", xing.NumberOfCrossings(g),
		"bottleneck_crossings", xing.MaxEdgeCrossings(g),
	)

	return Result{
		Iterations:              ctl.Iteration(),
		Passes:                  ctl.Pass(),
		TotalCrossings:          xing.NumberOfCrossings(g),
		BottleneckCrossings:     xing.MaxEdgeCrossings(g),
		TotalStretch:            xing.TotalStretch(g),
		BottleneckStretch:       xing.BottleneckStretch(g),
		BestTotalCrossings:      ctx.Tracker.Best(tracker.TotalCrossings),
		BestBottleneckCrossings: ctx.Tracker.Best(tracker.BottleneckCrossings),
		BestTotalStretch:        ctx.Tracker.Best(tracker.TotalStretch),
		BestBottleneckStretch:   ctx.Tracker.Best(tracker.BottleneckStretch),
		Frontier:                frontier.Points(),
	}, nil
}
