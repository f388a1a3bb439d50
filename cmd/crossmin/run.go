package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gocrossmin/crossmin/engine"
	"github.com/gocrossmin/crossmin/heuristic"
	"github.com/gocrossmin/crossmin/ioformat"
	"github.com/gocrossmin/crossmin/ioformat/sgf"
	"github.com/gocrossmin/crossmin/layered"
)

// loadGraph resolves the positional file arguments into a Graph: zero args
// reads sgf from stdin (requires -I), one arg is an sgf file, two are a
// dot file followed by an ord file.
func loadGraph(f *runFlags, args []string) (g *layered.Graph, warnings []string, wasDotOrd bool, err error) {
	switch len(args) {
	case 0:
		if !f.stdin {
			return nil, nil, false, fmt.Errorf("%w: no file arguments given and -I not set", ErrUnknownOption)
		}
		g, warnings, err = sgf.Read(os.Stdin)
		return g, warnings, false, err
	case 1:
		r, openErr := os.Open(args[0])
		if openErr != nil {
			return nil, nil, false, fmt.Errorf("%w: %v", ioformat.ErrIOFailure, openErr)
		}
		defer r.Close()
		g, warnings, err = sgf.Read(r)
		return g, warnings, false, err
	case 2:
		dotR, openErr := os.Open(args[0])
		if openErr != nil {
			return nil, nil, false, fmt.Errorf("%w: %v", ioformat.ErrIOFailure, openErr)
		}
		defer dotR.Close()
		ordR, openErr := os.Open(args[1])
		if openErr != nil {
			return nil, nil, false, fmt.Errorf("%w: %v", ioformat.ErrIOFailure, openErr)
		}
		defer ordR.Close()
		g, warnings, err = ioformat.LoadDotOrd(dotR, ordR)
		return g, warnings, true, err
	default:
		return nil, nil, false, fmt.Errorf("%w: at most two file arguments are accepted", ErrUnknownOption)
	}
}

// buildEngineOptions translates runFlags into engine.Options, consulting
// cmd's Flags().Changed to tell an explicitly-zero budget from an unset one.
func buildEngineOptions(c *CLI, cmd *cobra.Command, f *runFlags) (engine.Options, heuristic.Kind, error) {
	kind, err := lookupHeuristic(f.heuristic)
	if err != nil {
		return engine.Options{}, 0, err
	}
	pre, err := lookupPreprocessor(f.preprocessor)
	if err != nil {
		return engine.Options{}, 0, err
	}
	siftOrder, err := lookupSiftOrder(f.siftOrder)
	if err != nil {
		return engine.Options{}, 0, err
	}
	isTotal, err := lookupSiftObjectiveIsTotal(f.siftObjective)
	if err != nil {
		return engine.Options{}, 0, err
	}
	axes, err := lookupParetoAxes(f.pareto)
	if err != nil {
		return engine.Options{}, 0, err
	}

	opts := engine.Options{
		Heuristic: kind,
		Tuning: heuristic.Options{
			Preprocessor:     pre,
			SiftOrder:        siftOrder,
			SiftByBottleneck: !isTotal,
			Randomize:        cmd.Flags().Changed("seed"),
		},
		Seed:             f.seed,
		PostProcess:      f.swap,
		CaptureIteration: f.capture,
		TraceFreq:        f.traceFreq,
		ParetoAxes:       axes,
		Logger:           c.Logger,
	}
	if cmd.Flags().Changed("max-iterations") {
		v := f.maxIterations
		opts.MaxIterations = &v
	}
	if cmd.Flags().Changed("max-runtime") {
		d := time.Duration(f.maxRuntime * float64(time.Second))
		opts.MaxRuntime = &d
	}
	return opts, kind, nil
}

// runCrossmin is the root command's RunE: load, run, write.
func runCrossmin(c *CLI, cmd *cobra.Command, f *runFlags, args []string) error {
	g, warnings, wasDotOrd, err := loadGraph(f, args)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		c.Logger.Warnw("input warning", "message", w)
	}

	opts, kind, err := buildEngineOptions(c, cmd, f)
	if err != nil {
		return err
	}

	base := f.writeBase
	if base == "_" || base == "" {
		base = g.Name
	}
	if f.capture >= 0 {
		stem := outputStem(base, opts.Tuning.Preprocessor, kind, fmt.Sprintf("%d", f.capture))
		opts.Capture = func() error {
			return writeResult(stem, g, wasDotOrd)
		}
	}

	result, err := engine.Run(g, opts)
	if err != nil {
		return err
	}

	tag, err := lookupObjectiveTag(f.objective)
	if err != nil {
		return err
	}

	if f.writeStdout {
		if err := writeResultStdout(g, wasDotOrd); err != nil {
			return err
		}
	}
	if f.writeBase != "" {
		stem := outputStem(base, opts.Tuning.Preprocessor, kind, tag)
		if err := writeResult(stem, g, wasDotOrd); err != nil {
			return err
		}
		if f.swap {
			postStem := outputStem(base, opts.Tuning.Preprocessor, kind, "post")
			if err := writeResult(postStem, g, wasDotOrd); err != nil {
				return err
			}
		}
	}

	c.Logger.Infow("result",
		"total_crossings", result.TotalCrossings,
		"bottleneck_crossings", result.BottleneckCrossings,
		"total_stretch", result.TotalStretch,
		"bottleneck_stretch", result.BottleneckStretch,
		"iterations", result.Iterations,
		"passes", result.Passes,
	)
	return nil
}
