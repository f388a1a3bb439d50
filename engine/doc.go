// Package engine is the public entry point of design note:
// engine.Run(g, opts) packages the graph, the crossing engine, the
// tracker, the iteration controller, and the PRNG into one process-local
// context and drives a single heuristic run to termination.
package engine
