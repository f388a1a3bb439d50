package tracker

import (
	"github.com/gocrossmin/crossmin/layered"
	"github.com/gocrossmin/crossmin/snapshot"
)

// Point is one entry on a two-objective Pareto frontier: a value pair plus
// the ordering and iteration that produced it.
type Point struct {
	A, B      float64
	Iteration int
	Ordering  *snapshot.Ordering
}

// Frontier maintains the set of non-dominated (A, B) points seen so far,
// where lower is better on both axes. A point p dominates q
// when p.A <= q.A and p.B <= q.B with at least one strict inequality.
type Frontier struct {
	points []Point
}

// NewFrontier returns an empty Frontier.
func NewFrontier() *Frontier { return &Frontier{} }

func dominates(a, b Point) bool {
	return a.A <= b.A && a.B <= b.B && (a.A < b.A || a.B < b.B)
}

// Offer inserts (a, b) if no existing point dominates it, removing any
// existing points that the new point in turn dominates. It reports whether
// the point was added.
func (f *Frontier) Offer(a, bVal float64, iteration int, g *layered.Graph) bool {
	candidate := Point{A: a, B: bVal, Iteration: iteration, Ordering: snapshot.Save(g)}
	for _, p := range f.points {
		if dominates(p, candidate) {
			return false
		}
	}
	kept := f.points[:0:0]
	for _, p := range f.points {
		if !dominates(candidate, p) {
			kept = append(kept, p)
		}
	}
	kept = append(kept, candidate)
	f.points = kept
	return true
}

// Points returns the current frontier, in insertion order of survivors.
func (f *Frontier) Points() []Point {
	out := make([]Point, len(f.points))
	copy(out, f.points)
	return out
}

// Len reports the number of points currently on the frontier.
func (f *Frontier) Len() int { return len(f.points) }
