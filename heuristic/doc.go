// Package heuristic implements the heuristic library of :
// the sort/PRNG primitives' heuristic-facing counterparts, the shared
// sifting core, the sweep family (median, barycenter, modified barycenter),
// the maximum-crossings family (mcn, mce, mce_s, mse), the BFS/DFS/MDS
// preprocessors, and the swapping post-processor. Every exported Run*
// function takes a *Context and drives it to termination through
// iterctl, recording progress on Context.Tracker as it goes.
package heuristic
