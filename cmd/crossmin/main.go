// Command crossmin minimizes edge crossings in a k-layer drawing of a
// directed acyclic graph: run a preprocessor and heuristic over an sgf or
// dot+ord input and write the resulting ordering, or run `crossmin serve`
// to accept the same work over HTTP.
package main

import (
	"fmt"
	"os"
)

func main() {
	c := New()
	if err := c.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
