// Package layeredgen builds small, hand-verified layered graphs used as
// test fixtures across the module: path, bipartite, identity-matching,
// reversed-matching, and random-sparse generators.
package layeredgen
