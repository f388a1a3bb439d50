// Package xing is the crossing/stretch accounting engine.
// It owns no state of its own: every cached counter it maintains
// (Node.UpCrossings/DownCrossings, Edge.Crossings, Graph.BilayerCrossings,
// Graph.TotalCrossings) lives on the layered.Graph itself, so a heuristic
// can always answer "how many crossings right now" without importing this
// package again.
//
// UpdateAllCrossings recomputes every cache from scratch; it is the only
// function that must be called after an arbitrary sequence of position
// changes (a restored snapshot, a freshly loaded graph). UpdateCrossingsForLayer
// is the cheaper, local form used by heuristics that move one node or
// resort one layer at a time: it only touches the (at most two) bilayer
// boundaries incident to that layer, which is sufficient because each
// node's UpCrossings/DownCrossings and each edge's Crossings is wholly
// determined by exactly one bilayer boundary.
package xing
