package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// CLI holds the state shared by the root command and its subcommands: the
// logger (rebuilt once -v is known) and the viper instance every flag is
// registered with. Commands read their values from the parsed flags;
// nothing loads a config file or environment variables into viper.
type CLI struct {
	Logger *zap.SugaredLogger
	v      *viper.Viper
}

// New returns a CLI with an info-level logger and a fresh viper instance.
func New() *CLI {
	logger, _ := zap.NewProduction()
	return &CLI{
		Logger: logger.Sugar(),
		v:      viper.New(),
	}
}

// setVerbose rebuilds the logger: at debug level when verbose is true, at
// the production default (info) level otherwise.
func (c *CLI) setVerbose(verbose bool) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return
	}
	c.Logger = logger.Sugar()
}

// RootCommand builds the root cobra command. crossmin has no subcommand for
// its main job: running a heuristic over an input graph is what the binary
// does when invoked with flags and zero-to-two positional file arguments.
// "serve" is the one subcommand, for the optional HTTP service mode.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool
	opts := newRunFlags()

	root := &cobra.Command{
		Use:          "crossmin [dot ord | sgf]",
		Short:        "crossmin minimizes edge crossings in a k-layer drawing of a DAG",
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.setVerbose(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrossmin(c, cmd, opts, args)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	opts.bind(root, c.v)

	root.AddCommand(c.serveCommand())
	return root
}

// Execute runs the CLI to completion, returning the first error encountered.
func (c *CLI) Execute() error {
	if err := c.RootCommand().Execute(); err != nil {
		return fmt.Errorf("crossmin: %w", err)
	}
	return nil
}
