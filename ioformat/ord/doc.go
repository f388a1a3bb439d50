// Package ord reads and writes the ord dialect: optional "#"-comment
// lines followed by one block per layer, "<layer-number> { <name>* }",
// with layers numbered 0..L-1 in ascending order. An ord file only
// describes node identity and per-layer ordering; edges come from a
// paired dot file (see the dotfmt package and ioformat.LoadDotOrd).
package ord
