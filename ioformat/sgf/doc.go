// Package sgf reads and writes the sgf line format: a comment block
// ("c <text>" lines), a header line ("t <name> <nodes> <edges> <layers>"),
// a block of node lines ("n <id> <layer> <position>"), and a block of
// edge lines ("e <down-id> <up-id>"). The header's declared counts are
// advisory: a mismatch against what is actually read is reported back to
// the caller as a warning, never a fatal error.
package sgf
