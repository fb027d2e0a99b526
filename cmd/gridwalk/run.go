package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridwalk/experiment"
	"github.com/katalvlaran/gridwalk/puzzle"
	"github.com/katalvlaran/gridwalk/viewer"
)

type runOptions struct {
	flags       experiment.Flags
	configFile  string
	metricsAddr string
	verbose     bool
}

func runCmd() *commander.Command {
	opts := &runOptions{}
	cmd := &commander.Command{
		Run: func(_ *commander.Command, _ []string) error {
			return runExperiment(opts)
		},
		UsageLine: "run [options]",
		Short:     "run an experiment case and print solutions and the metrics table",
		Long: `
run the algorithms of an experiment case on a map and print each solution
followed by a metrics table

	$ gridwalk run -case 2
	$ gridwalk run -config experiment.yaml -random -seed 7

Flags override the values of the config file.
`,
		Flag: *flag.NewFlagSet("run", flag.ExitOnError),
	}
	opts.flags.RegisterRunFlags(&cmd.Flag)
	cmd.Flag.StringVar(&opts.configFile, "config", "", "Path to a YAML experiment config")
	cmd.Flag.StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	cmd.Flag.BoolVar(&opts.verbose, "verbose", false, "Enable debug logging to stderr")
	return cmd
}

func runExperiment(opts *runOptions) error {
	logger := newLogger(opts.verbose)
	slog.SetDefault(logger)

	cfg := experiment.DefaultConfig()
	if opts.configFile != "" {
		loaded, err := experiment.LoadConfig(opts.configFile)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	overrides := experiment.FlagOverrides(opts.flags)
	cfg.Merge(&overrides)
	if experiment.SeedRandom(&cfg.Map, time.Now) {
		logger.Info("random map seed", slog.Int64("seed", cfg.Map.Seed))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runnerOpts := []experiment.RunnerOption{
		experiment.WithLogger(logger),
		experiment.WithOutput(os.Stdout),
		experiment.WithObserver(viewer.NewTracing[puzzle.State, puzzle.Action](nil, opts.verbose)),
	}
	if opts.verbose {
		runnerOpts = append(runnerOpts, experiment.WithObserver(viewer.NewSlog[puzzle.State, puzzle.Action](logger)))
	}
	if opts.metricsAddr != "" {
		runnerOpts = append(runnerOpts, experiment.WithObserver(viewer.NewMetrics[puzzle.State, puzzle.Action](prometheus.DefaultRegisterer)))
		srv := serveMetrics(opts.metricsAddr, logger)
		defer srv.Close()
	}

	if _, err := experiment.NewRunner(runnerOpts...).RunConfig(ctx, &cfg); err != nil {
		return err
	}

	if opts.metricsAddr != "" {
		logger.Info("metrics still served; interrupt to exit", slog.String("addr", opts.metricsAddr))
		<-ctx.Done()
	}
	return nil
}

// newLogger returns a stderr text logger at Info, or Debug when verbose.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// serveMetrics exposes the default Prometheus registry on addr.
func serveMetrics(addr string, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", slog.Any("error", err))
		}
	}()
	logger.Info("serving metrics", slog.String("addr", addr))
	return srv
}
