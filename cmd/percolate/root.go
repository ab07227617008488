package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/montecarlo"
)

// config is the validated command-line configuration.
type config struct {
	n         int
	trials    int
	seed      int64
	workers   int
	strategy  montecarlo.Strategy
	format    string
	logLevel  slog.Level
	logFormat string
}

// flagValues holds raw flag input before validation.
type flagValues struct {
	seed      int64
	workers   int
	strategy  string
	format    string
	logLevel  string
	logFormat string
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var fv flagValues
	var cfg config

	cmd := &cobra.Command{
		Use:   "percolate <n> <trials>",
		Short: "Estimate the percolation threshold of an n×n grid by Monte Carlo simulation",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(cmd, args); err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = parseConfig(args, fv)
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return simulate(out, newLogger(errOut, cfg), cfg)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	// Errors are reported once by main.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: 2, Message: err.Error()}
	})

	flags := cmd.Flags()
	flags.Int64Var(&fv.seed, "seed", 0, "base RNG seed (0 = fixed default seed)")
	flags.IntVarP(&fv.workers, "workers", "w", 1, "number of trials run concurrently")
	flags.StringVar(&fv.strategy, "strategy", montecarlo.Rejection.String(), "site selection: rejection or shuffle")
	flags.StringVarP(&fv.format, "format", "f", "text", "output format: text, yaml or json")
	flags.StringVar(&fv.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.StringVar(&fv.logFormat, "log-format", "text", "log format: text or json")

	return cmd
}

// parseConfig validates positional arguments and flags. Grid size and trial
// count are only checked for being integers here; their ranges are enforced by
// montecarlo.Run.
func parseConfig(args []string, fv flagValues) (config, error) {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return config{}, fmt.Errorf("n must be an integer, got %q", args[0])
	}
	trials, err := strconv.Atoi(args[1])
	if err != nil {
		return config{}, fmt.Errorf("trials must be an integer, got %q", args[1])
	}
	strategy, err := montecarlo.ParseStrategy(fv.strategy)
	if err != nil {
		return config{}, err
	}

	format := strings.ToLower(fv.format)
	switch format {
	case "text", "yaml", "json":
	default:
		return config{}, fmt.Errorf("invalid format %q: must be 'text', 'yaml' or 'json'", fv.format)
	}

	var level slog.Level
	if err = level.UnmarshalText([]byte(fv.logLevel)); err != nil {
		return config{}, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn' or 'error'", fv.logLevel)
	}

	logFormat := strings.ToLower(fv.logFormat)
	if logFormat != "text" && logFormat != "json" {
		return config{}, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", fv.logFormat)
	}

	return config{
		n:         n,
		trials:    trials,
		seed:      fv.seed,
		workers:   fv.workers,
		strategy:  strategy,
		format:    format,
		logLevel:  level,
		logFormat: logFormat,
	}, nil
}

func newLogger(w io.Writer, cfg config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.logLevel}
	if cfg.logFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func simulate(out io.Writer, logger *slog.Logger, cfg config) error {
	logger.Info("simulation starting",
		"n", cfg.n,
		"trials", humanize.Comma(int64(cfg.trials)),
		"workers", cfg.workers,
		"strategy", cfg.strategy.String(),
	)
	stats, err := montecarlo.Run(cfg.n, cfg.trials,
		montecarlo.WithSeed(cfg.seed),
		montecarlo.WithWorkers(cfg.workers),
		montecarlo.WithStrategy(cfg.strategy),
		montecarlo.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	logger.Info("simulation finished", "mean", stats.Mean())

	return writeReport(out, cfg.format, stats.Report())
}
