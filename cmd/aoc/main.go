// Command aoc runs the puzzle solver for one day.
//
//	aoc 5                 solve inputs/input05.in
//	aoc 6 --example 2     solve inputs/example06-2.in
//	aoc list              list implemented days
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/adventsolve/aoc"
	"github.com/adventsolve/aoc/internal/config"
	"github.com/adventsolve/aoc/internal/logging"
	"github.com/adventsolve/aoc/internal/render"
)

type options struct {
	configPath string
	inputs     string
	debug      bool
	plain      bool
	skipSample bool
	example    int
}

// newLogger builds the run's logger; tests replace it.
var newLogger = logging.New

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "aoc <day>",
		Short:        "Solve an Advent of Code puzzle by day number",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil || day < 1 {
				return fmt.Errorf("invalid day %q: want a positive number", args[0])
			}
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.Debug)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			r := &aoc.Runner{
				Inputs:     cfg.Inputs,
				Samples:    cfg.RunnerSamples(),
				SkipSample: opts.skipSample,
				Printer:    render.New(cmd.OutOrStdout(), cfg.Plain),
				Log:        logger,
			}
			if cmd.Flags().Changed("example") {
				return r.RunExample(day, opts.example)
			}
			return r.Run(day)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "settings file (default ./"+config.DefaultFile+" if present)")
	f.StringVar(&opts.inputs, "inputs", "", "directory holding puzzle inputs (overrides config)")
	f.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	f.BoolVar(&opts.plain, "plain", false, "print plain blocks even on a terminal")
	f.BoolVar(&opts.skipSample, "skip-sample", false, "do not check the configured example answers first")
	f.IntVar(&opts.example, "example", 0, "solve example N instead of the puzzle input (0 for the only example)")

	cmd.AddCommand(newListCmd())
	return cmd
}

// loadConfig reads the settings file and applies flag overrides.
func loadConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load(config.DefaultFile)
	}
	if err != nil {
		return config.Config{}, err
	}
	if opts.inputs != "" {
		cfg.Inputs = opts.inputs
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = opts.debug
	}
	if cmd.Flags().Changed("plain") {
		cfg.Plain = opts.plain
	}
	return cfg, nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List implemented days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, day := range aoc.Days() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), day); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
