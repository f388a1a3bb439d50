// Package dotfmt reads the minimal graphviz DOT subset used as the edge
// half of a dot+ord file pair: the graph's name and its edge list, read
// with a real DOT grammar via github.com/goccy/go-graphviz/cgraph rather
// than a hand-rolled tokenizer. Edge direction carries no meaning here —
// layer membership, and so Up/Down classification, comes from the paired
// ord file.
package dotfmt
