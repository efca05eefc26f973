// Command frontier reads an undirected graph from standard input and runs
// the parallel BFS and DFS engines over it.
//
// Without a subcommand it serves the interactive menu; "traverse" and
// "components" run once and exit.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/frontier/config"
	"github.com/katalvlaran/frontier/internal/telemetry"
	"github.com/katalvlaran/frontier/pool"
	"github.com/katalvlaran/frontier/sweep"
)

// flags holds the command-line overrides; zero values keep the config file.
type flags struct {
	configPath  string
	workers     int
	threshold   int
	maxNodes    int
	strategy    string
	logLevel    string
	metricsAddr string
	noSweep     bool
}

// runtimeEnv is everything a command needs after configuration is resolved.
type runtimeEnv struct {
	cfg      config.Config
	log      *logrus.Logger
	pool     *pool.Pool
	strategy sweep.Strategy
	policy   sweep.Policy
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Stdin, os.Stdout).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	f := &flags{threshold: -1}

	root := &cobra.Command{
		Use:          "frontier",
		Short:        "Parallel BFS/DFS over an undirected graph read from stdin",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			shutdown := serveMetrics(env.cfg.Metrics.Addr, env.log)
			defer shutdown()

			tok := newTokens(in)
			g, err := readGraph(tok, out, env.cfg.MaxNodes)
			if err != nil {
				env.log.WithError(err).Error("reading graph")
				return err
			}
			s := &session{
				ctx:    cmd.Context(),
				in:     tok,
				out:    out,
				graph:  g,
				pool:   env.pool,
				log:    env.log,
				policy: env.policy,
			}
			return s.loop()
		},
	}
	root.SetIn(in)
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (.toml or .yaml)")
	pf.IntVar(&f.workers, "workers", 0, "goroutines per parallel region (0: config or NumCPU)")
	pf.IntVar(&f.threshold, "threshold", -1, "region size below which work runs inline (-1: config)")
	pf.IntVar(&f.maxNodes, "max-nodes", 0, "largest node count a graph header may declare (0: config)")
	pf.StringVar(&f.strategy, "strategy", "", "traversal strategy for traverse and components: bfs|dfs")
	pf.StringVar(&f.logLevel, "log-level", "", "logrus level (debug, info, warn, error)")
	pf.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	pf.BoolVar(&f.noSweep, "no-sweep", false, "do not restart on disconnected components")

	root.AddCommand(newTraverseCmd(f, in, out))
	root.AddCommand(newComponentsCmd(f, in, out))

	return root
}

// resolve layers flags over the config file and builds the shared runtime.
func (f *flags) resolve(cmd *cobra.Command) (*runtimeEnv, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.workers > 0 {
		cfg.Workers = f.workers
	}
	if f.threshold >= 0 {
		cfg.Threshold = f.threshold
	}
	if f.maxNodes > 0 {
		cfg.MaxNodes = f.maxNodes
	}
	if f.strategy != "" {
		cfg.Strategy = f.strategy
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.metricsAddr != "" {
		cfg.Metrics.Addr = f.metricsAddr
	}
	if f.noSweep {
		cfg.Sweep = "none"
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := telemetry.NewLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	strategy, err := sweep.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	policy, err := sweep.ParsePolicy(cfg.Sweep)
	if err != nil {
		return nil, err
	}

	p := pool.New(
		pool.WithWorkers(cfg.Workers),
		pool.WithThreshold(cfg.Threshold),
		pool.WithLogger(log),
	)
	log.WithFields(logrus.Fields{
		"command":   cmd.Name(),
		"workers":   p.Workers(),
		"threshold": cfg.Threshold,
		"strategy":  strategy.String(),
		"sweep":     cfg.Sweep,
	}).Debug("configuration resolved")

	return &runtimeEnv{cfg: cfg, log: log, pool: p, strategy: strategy, policy: policy}, nil
}

// serveMetrics exposes the default Prometheus registry on addr. The returned
// func shuts the server down; with an empty addr it is a no-op.
func serveMetrics(addr string, log logrus.FieldLogger) func() {
	if addr == "" {
		return func() {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("metrics server stopped")
		}
	}()
	log.WithField("addr", addr).Info("serving metrics")

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.WithError(err).Warn("metrics server shutdown")
		}
	}
}

func newTraverseCmd(f *flags, in io.Reader, out io.Writer) *cobra.Command {
	var start int

	cmd := &cobra.Command{
		Use:   "traverse",
		Short: "Read a graph and print one sweep from --start",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			g, err := readGraph(newTokens(in), io.Discard, env.cfg.MaxNodes)
			if err != nil {
				return err
			}

			res, err := sweep.Run(g, start, env.strategy,
				sweep.WithContext(cmd.Context()),
				sweep.WithPool(env.pool),
				sweep.WithLogger(env.log),
				sweep.WithPolicy(env.policy),
			)
			if err != nil {
				return err
			}
			for _, p := range res.Passes {
				fmt.Fprintln(out, joinInts(p.Order))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&start, "start", 1, "starting node")

	return cmd
}

func newComponentsCmd(f *flags, in io.Reader, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "Read a graph and print every component that has an edge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			g, err := readGraph(newTokens(in), io.Discard, env.cfg.MaxNodes)
			if err != nil {
				return err
			}

			comps, err := sweep.Components(g, env.strategy,
				sweep.WithContext(cmd.Context()),
				sweep.WithPool(env.pool),
				sweep.WithLogger(env.log),
			)
			if err != nil {
				return err
			}
			for i, c := range comps {
				fmt.Fprintf(out, "%d: %s\n", i+1, joinInts(c))
			}
			return nil
		},
	}
}

func joinInts(ids []int) string {
	b := make([]byte, 0, len(ids)*3)
	for i, id := range ids {
		if i > 0 {
			b = append(b, ' ')
		}
		b = strconv.AppendInt(b, int64(id), 10)
	}
	return string(b)
}
