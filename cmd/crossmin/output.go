package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gocrossmin/crossmin/heuristic"
	"github.com/gocrossmin/crossmin/ioformat"
	"github.com/gocrossmin/crossmin/ioformat/sgf"
	"github.com/gocrossmin/crossmin/layered"
)

// outputStem builds everything in the result file name except the
// extension: BASE-<preprocessor>+<heuristic>-<objective-tag>.
func outputStem(base string, pre heuristic.Preprocessor, kind heuristic.Kind, tag string) string {
	preName := "none"
	switch pre {
	case heuristic.BFS:
		preName = "bfs"
	case heuristic.DFS:
		preName = "dfs"
	case heuristic.MDS:
		preName = "mds"
	}
	return fmt.Sprintf("%s-%s+%s-%s", base, preName, kind.String(), tag)
}

// writeResult writes g under stem: a single "<stem>.sgf" file for an sgf
// input, or a "<stem>.dot"/"<stem>.ord" pair for a dot+ord input.
func writeResult(stem string, g *layered.Graph, wasDotOrd bool) error {
	if !wasDotOrd {
		f, err := os.Create(stem + ".sgf")
		if err != nil {
			return fmt.Errorf("%w: %v", ioformat.ErrIOFailure, err)
		}
		defer f.Close()
		return sgf.Write(f, g)
	}
	dotOut, err := os.Create(stem + ".dot")
	if err != nil {
		return fmt.Errorf("%w: %v", ioformat.ErrIOFailure, err)
	}
	defer dotOut.Close()
	ordOut, err := os.Create(stem + ".ord")
	if err != nil {
		return fmt.Errorf("%w: %v", ioformat.ErrIOFailure, err)
	}
	defer ordOut.Close()
	return ioformat.WriteDotOrd(dotOut, ordOut, g)
}

// writeResultStdout writes g to stdout in whichever single form applies:
// sgf text for an sgf input, or the dot+ord pair concatenated (dot section
// then ord section) for a dot+ord input, since stdout carries one stream.
func writeResultStdout(g *layered.Graph, wasDotOrd bool) error {
	if !wasDotOrd {
		return sgf.Write(os.Stdout, g)
	}
	var dot, ord strings.Builder
	if err := ioformat.WriteDotOrd(&dot, &ord, g); err != nil {
		return err
	}
	if _, err := fmt.Fprint(os.Stdout, dot.String(), ord.String()); err != nil {
		return fmt.Errorf("%w: %v", ioformat.ErrIOFailure, err)
	}
	return nil
}
