package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runFlags holds the raw string/number form of every CLI flag; translating
// them into engine.Options happens in run.go once positional arguments are
// known too.
type runFlags struct {
	stdin bool

	heuristic     string
	preprocessor  string
	swap          bool
	maxIterations int
	maxRuntime    float64
	seed          int64
	randomize     bool
	capture       int
	pareto        string
	objective     string
	writeBase     string
	writeStdout   bool
	siftOrder     string
	siftObjective string
	traceFreq     int
}

func newRunFlags() *runFlags {
	return &runFlags{capture: -1, traceFreq: -1}
}

// bind registers every flag on cmd and binds it into v. The run reads the
// values held in f; no config file or environment variable is read.
func (f *runFlags) bind(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.Flags()
	flags.BoolVarP(&f.stdin, "stdin", "I", false, "read sgf from stdin when no file args are given")
	flags.StringVarP(&f.heuristic, "heuristic", "h", "", "heuristic: median|bary|mod_bary|mcn|sifting|mce|mce_s|mse")
	flags.StringVarP(&f.preprocessor, "preprocessor", "p", "", "preprocessor: bfs|dfs|mds")
	flags.BoolVarP(&f.swap, "swap", "z", false, "enable the swapping post-processor")
	flags.IntVarP(&f.maxIterations, "max-iterations", "i", 0, "max iterations; disables standard termination")
	flags.Float64VarP(&f.maxRuntime, "max-runtime", "r", 0, "max runtime seconds; disables standard termination")
	flags.Int64VarP(&f.seed, "seed", "R", 0, "PRNG seed for the random sifting order (-s random); node order is not re-randomised between passes")
	flags.IntVarP(&f.capture, "capture", "c", -1, "capture the ordering at the end of this iteration to a side file")
	flags.StringVarP(&f.pareto, "pareto", "P", "", "track a two-objective Pareto frontier: b_t|s_t|b_s")
	flags.StringVarP(&f.objective, "objective", "o", "t", "primary objective for selected output: t|b|s|bs")
	flags.StringVarP(&f.writeBase, "write", "w", "", "write result file(s); '_' uses the graph name")
	flags.BoolVarP(&f.writeStdout, "stdout", "O", false, "write the selected result to stdout")
	flags.StringVarP(&f.siftOrder, "sift-order", "s", "", "sifting order: layer|degree|random")
	flags.StringVarP(&f.siftObjective, "sift-objective", "g", "", "sifting objective style: total|max")
	flags.IntVarP(&f.traceFreq, "trace", "t", -1, "trace frequency; 0 = pass-end only, <0 = off")

	for _, name := range []string{"stdin", "heuristic", "preprocessor", "swap", "max-iterations",
		"max-runtime", "seed", "capture", "pareto", "objective", "write", "stdout",
		"sift-order", "sift-objective", "trace"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}
}
