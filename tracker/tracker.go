package tracker

import (
	"github.com/gocrossmin/crossmin/layered"
	"github.com/gocrossmin/crossmin/snapshot"
	"github.com/gocrossmin/crossmin/xing"
)

// Objective enumerates the quantities the tracker can follow.
// FavoredCrossings corresponds to the favored_edges subsystem: it is
// part of the enum and String for completeness, but ObserveGraph and Value
// never compute it and no heuristic reports a value for it, so it stays
// permanently dormant.
type Objective int

const (
	TotalCrossings Objective = iota
	BottleneckCrossings
	TotalStretch
	BottleneckStretch
	FavoredCrossings
)

func (o Objective) String() string {
	switch o {
	case TotalCrossings:
		return "total_crossings"
	case BottleneckCrossings:
		return "bottleneck_crossings"
	case TotalStretch:
		return "total_stretch"
	case BottleneckStretch:
		return "bottleneck_stretch"
	case FavoredCrossings:
		return "favored_crossings"
	default:
		return "unknown"
	}
}

// Record is the best value seen so far for one objective, together with the
// iteration it was reached at and the ordering that produced it.
type Record struct {
	Value     float64
	Iteration int
	Ordering  *snapshot.Ordering
}

// Tracker holds one Record per tracked objective, overwritten only when a
// strictly better value is observed.
type Tracker struct {
	best map[Objective]*Record
}

// New returns an empty Tracker.
func New() *Tracker {
	return &Tracker{best: make(map[Objective]*Record)}
}

// Consider reports whether value improves upon the current best for obj
// (strictly lower; ties do not count as an improvement) and, if so, records
// value, iteration, and a fresh snapshot of g's ordering as the new best.
func (t *Tracker) Consider(obj Objective, value float64, iteration int, g *layered.Graph) bool {
	cur, ok := t.best[obj]
	if ok && value >= cur.Value {
		return false
	}
	t.best[obj] = &Record{
		Value:     value,
		Iteration: iteration,
		Ordering:  snapshot.Save(g),
	}
	return true
}

// Best returns the current best Record for obj, or nil if obj has never been
// observed.
func (t *Tracker) Best(obj Objective) *Record {
	return t.best[obj]
}

// Value reads obj's current live value off g, independent of any tracked
// best-so-far record. FavoredCrossings has no live computation and always
// reads 0.
func Value(obj Objective, g *layered.Graph) float64 {
	switch obj {
	case TotalCrossings:
		return float64(xing.NumberOfCrossings(g))
	case BottleneckCrossings:
		return float64(xing.MaxEdgeCrossings(g))
	case TotalStretch:
		return xing.TotalStretch(g)
	case BottleneckStretch:
		return xing.BottleneckStretch(g)
	default:
		return 0
	}
}

// ObserveGraph reads TotalCrossings, BottleneckCrossings, TotalStretch, and
// BottleneckStretch off g's current ordering and calls Consider for each.
// FavoredCrossings is never touched here: it has no live computation and
// stays at whatever state callers set through Consider directly, if ever.
// It returns the subset of objectives that improved this iteration.
func (t *Tracker) ObserveGraph(g *layered.Graph, iteration int) []Objective {
	var improved []Objective
	if t.Consider(TotalCrossings, float64(xing.NumberOfCrossings(g)), iteration, g) {
		improved = append(improved, TotalCrossings)
	}
	if t.Consider(BottleneckCrossings, float64(xing.MaxEdgeCrossings(g)), iteration, g) {
		improved = append(improved, BottleneckCrossings)
	}
	if t.Consider(TotalStretch, xing.TotalStretch(g), iteration, g) {
		improved = append(improved, TotalStretch)
	}
	if t.Consider(BottleneckStretch, xing.BottleneckStretch(g), iteration, g) {
		improved = append(improved, BottleneckStretch)
	}
	return improved
}
