// Package sortutil provides the deterministic sorting and randomisation
// primitives shared by the heuristic family of : stable
// sorts of a layer's nodes by weight or degree, and a seeded PRNG stream
// (SplitMix64-derived substreams, Fisher-Yates shuffle) used to break ties
// and re-randomise node order between passes.
package sortutil
