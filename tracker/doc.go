// Package tracker implements the best-so-far tracker and Pareto frontier
// of : one snapshot per tracked objective, overwritten only on
// strict improvement, plus an optional two-objective dominance frontier.
package tracker
