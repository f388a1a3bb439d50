package engine

import "github.com/gocrossmin/crossmin/tracker"

// Result is everything a caller needs after a run: the final measures,
// the best-so-far record per tracked objective, and (when
// Options.ParetoAxes was set) a two-objective Pareto frontier.
type Result struct {
	Iterations int
	Passes     int

	TotalCrossings      int
	BottleneckCrossings int
	TotalStretch        float64
	BottleneckStretch   float64

	BestTotalCrossings      *tracker.Record
	BestBottleneckCrossings *tracker.Record
	BestTotalStretch        *tracker.Record
	BestBottleneckStretch   *tracker.Record

	Frontier []tracker.Point
}
