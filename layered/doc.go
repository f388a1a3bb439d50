// Package layered defines the in-memory k-layer graph model: Node, Edge,
// Layer, and Graph, plus the invariants every other package in this module
// relies on.
//
// A Graph is a sequence of Layers (index == layer number). Every Node
// belongs to exactly one Layer at a given Position, and every Edge joins
// two Nodes on adjacent layers, oriented so Up is always the endpoint on
// the higher-numbered layer. Nothing in this package computes crossings or
// stretch; see the xing package for that. Nothing here runs a heuristic;
// see the heuristic package. This package only guarantees that, after any
// public mutation, the layer/position bookkeeping described in Validate
// holds.
package layered
