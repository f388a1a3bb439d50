package main

import (
	"fmt"

	"github.com/gocrossmin/crossmin/heuristic"
	"github.com/gocrossmin/crossmin/tracker"
)

// heuristicNames maps the -h flag's vocabulary to heuristic.Kind.
var heuristicNames = map[string]heuristic.Kind{
	"median":   heuristic.Median,
	"bary":     heuristic.Barycenter,
	"mod_bary": heuristic.ModifiedBarycenter,
	"sifting":  heuristic.Sifting,
	"mcn":      heuristic.MCN,
	"mce":      heuristic.MCE,
	"mce_s":    heuristic.MCES,
	"mse":      heuristic.MSE,
}

// preprocessorNames maps the -p flag's vocabulary to heuristic.Preprocessor.
var preprocessorNames = map[string]heuristic.Preprocessor{
	"bfs": heuristic.BFS,
	"dfs": heuristic.DFS,
	"mds": heuristic.MDS,
}

// siftOrderNames maps the -s flag's vocabulary to heuristic.SiftOrder.
var siftOrderNames = map[string]heuristic.SiftOrder{
	"layer":  heuristic.SiftByLayer,
	"degree": heuristic.SiftByDegree,
	"random": heuristic.SiftByRandom,
}

// siftObjectiveNames maps the -g flag's vocabulary to whether sifting scores
// each candidate position by total graph crossings (true) or by the moved
// node's own worst-case crossing count (false, heuristic.Options.SiftByBottleneck).
var siftObjectiveNames = map[string]bool{
	"total": true,
	"max":   false,
}

// objectiveTags maps the -o/-P flag vocabulary to the output file naming
// convention's single-letter tags.
var objectiveTags = map[string]string{
	"t":  "t",
	"b":  "b",
	"s":  "s",
	"bs": "bs",
}

func lookupHeuristic(name string) (heuristic.Kind, error) {
	k, ok := heuristicNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown heuristic %q", ErrUnknownOption, name)
	}
	return k, nil
}

func lookupPreprocessor(name string) (heuristic.Preprocessor, error) {
	if name == "" {
		return heuristic.NoPreprocessor, nil
	}
	p, ok := preprocessorNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown preprocessor %q", ErrUnknownOption, name)
	}
	return p, nil
}

func lookupSiftOrder(name string) (heuristic.SiftOrder, error) {
	if name == "" {
		return heuristic.SiftByLayer, nil
	}
	s, ok := siftOrderNames[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown sift order %q", ErrUnknownOption, name)
	}
	return s, nil
}

func lookupSiftObjectiveIsTotal(name string) (bool, error) {
	if name == "" {
		return true, nil
	}
	total, ok := siftObjectiveNames[name]
	if !ok {
		return false, fmt.Errorf("%w: unknown sifting objective %q", ErrUnknownOption, name)
	}
	return total, nil
}

// paretoAxisPairs maps the -P flag's vocabulary to the two tracker
// objectives its frontier is measured against.
var paretoAxisPairs = map[string][2]tracker.Objective{
	"b_t": {tracker.BottleneckCrossings, tracker.TotalCrossings},
	"s_t": {tracker.TotalStretch, tracker.TotalCrossings},
	"b_s": {tracker.BottleneckCrossings, tracker.TotalStretch},
}

func lookupParetoAxes(name string) (*[2]tracker.Objective, error) {
	if name == "" {
		return nil, nil
	}
	axes, ok := paretoAxisPairs[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown pareto pair %q", ErrUnknownOption, name)
	}
	return &axes, nil
}

func lookupObjectiveTag(name string) (string, error) {
	tag, ok := objectiveTags[name]
	if !ok {
		return "", fmt.Errorf("%w: unknown objective %q", ErrUnknownOption, name)
	}
	return tag, nil
}
