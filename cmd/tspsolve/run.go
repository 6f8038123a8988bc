package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/tsptour/config"
	"github.com/katalvlaran/tsptour/deadline"
	"github.com/katalvlaran/tsptour/matrix"
	"github.com/katalvlaran/tsptour/tourio"
	"github.com/katalvlaran/tsptour/tsp"
)

const (
	exitOK    = 0
	exitFatal = 1
)

const usage = `Program requires input file as command line entry. Usage:
  tspsolve [flags] <cities-file>

Flags:
`

// run executes one solve and returns the process exit code. The budget is
// measured from the first call to now, before the input is read.
func run(args []string, stderr io.Writer, now func() time.Time) int {
	start := now()

	fs := flag.NewFlagSet("tspsolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgPath = fs.String("config", "", "YAML file overriding the default tunables")
		limit   = fs.Duration("limit", 0, "time budget (default 300s)")
		noLimit = fs.Bool("no-limit", false, "run both phases to completion without a time budget")
		starts  = fs.Int("starts", 0, "sampled nearest-neighbor starts on large inputs (default 35)")
		verbose = fs.Bool("v", false, "debug logging")
	)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitFatal
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitFatal
	}
	input := fs.Arg(0)

	cfg, err := loadConfig(*cfgPath, *limit, *noLimit, *starts, *verbose)
	if err != nil {
		fmt.Fprintf(stderr, "tspsolve: %v\n", err)
		return exitFatal
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	logger.Info("reading data", slog.String("file", input))
	cities, err := tourio.Load(input)
	if err != nil {
		logger.Error("unable to open input file", slog.String("file", input), slog.Any("err", err))
		return exitFatal
	}
	n := len(cities)
	logger.Info("calculating distances between cities",
		slog.String("cities", humanize.Comma(int64(n))),
		slog.String("matrix", humanize.Bytes(uint64(n)*uint64(n)*8)))
	dist := matrix.NewEuclidean(cities)

	budget := cfg.Budget(start, deadline.WithClock(now))
	logger.Info("defining initial path", budgetAttrs(budget)...)
	res, err := tsp.Solve(dist, budget, cfg.Options())
	if err != nil {
		logger.Error("solver failed", slog.Any("err", err))
		return exitFatal
	}
	report(logger, res, budget)

	path, err := tourio.WriteFile(input, res.Tour)
	if err != nil {
		logger.Warn("unable to write result", slog.String("file", path), slog.Any("err", err))
		return exitOK
	}
	logger.Info("results written", slog.String("file", path))

	return exitOK
}

// loadConfig applies defaults, the optional YAML file and flag overrides.
// An explicit -limit bounds a run the file marked unlimited; -no-limit wins
// over both.
func loadConfig(path string, limit time.Duration, noLimit bool, starts int, verbose bool) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}
	if limit != 0 {
		cfg.TimeLimit = limit
		cfg.Unlimited = false
	}
	if noLimit {
		cfg.Unlimited = true
	}
	if starts != 0 {
		cfg.SampleStarts = starts
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, cfg.Validate()
}

// report logs the outcome of both phases.
func report(logger *slog.Logger, res tsp.Result, budget *deadline.Deadline) {
	cons := res.Construction
	if cons.TimedOut {
		logger.Warn("time limit reached while defining initial path",
			slog.Duration("limit", budget.Limit()),
			slog.Int("attempts", cons.Attempts),
			slog.Bool("fallback", res.Fallback))
	} else {
		logger.Info("initial path defined", append([]any{
			slog.Int("attempts", cons.Attempts),
			slog.String("cost", humanize.Comma(int64(res.InitialCost))),
		}, budgetAttrs(budget)...)...)
	}

	opt := res.Optimization
	switch {
	case opt.TimedOut:
		logger.Warn("time limit reached while optimizing locally",
			slog.Duration("limit", budget.Limit()),
			slog.Int("passes", opt.Passes),
			slog.Int("swaps", opt.Swaps))
	case opt.Converged:
		logger.Info("optimized locally",
			slog.Int("passes", opt.Passes),
			slog.Int("swaps", opt.Swaps))
	}

	logger.Info("calculations completed",
		slog.String("cost", humanize.Comma(int64(res.Tour.Cost()))),
		slog.Duration("elapsed", budget.Elapsed()))
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		logger.Debug("final tour", slog.String("tour", res.Tour.String()))
	}
}

// budgetAttrs describes what is left of the budget, or limit=none when the
// run is unbounded.
func budgetAttrs(budget *deadline.Deadline) []any {
	if !budget.Bounded() {
		return []any{slog.String("limit", "none")}
	}

	return []any{
		slog.Duration("limit", budget.Limit()),
		slog.Duration("remaining", budget.Remaining()),
	}
}
