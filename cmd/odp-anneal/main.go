// Command odp-anneal searches for a low-ASPL/diameter regular-graph
// topology via distributed simulated annealing over degree-preserving
// 2-opt rewirings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/odp-anneal/odpsolve/anneal"
	"github.com/odp-anneal/odpsolve/gen"
	"github.com/odp-anneal/odpsolve/graph"
	"github.com/odp-anneal/odpsolve/metrics"
	"github.com/odp-anneal/odpsolve/odpio"
	"github.com/odp-anneal/odpsolve/rng"
)

// Exit codes. os.Exit takes an int that is truncated to an 8-bit status
// by the OS, where negative values wrap to large positive numbers
// inconsistently across platforms, so this CLI uses small positive codes
// instead: success, a missing path, malformed arguments or input, and a
// failed run or output write.
const (
	exitSuccess       = 0
	exitMissingPath   = 1
	exitMalformedArgs = 2
	exitRunFailed     = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("odp-anneal", flag.ContinueOnError)
	threads := fs.Int("t", 0, "BFS worker-pool size per rank (0 = GOMAXPROCS)")
	ranks := fs.Int("ranks", 1, "number of simulated SPMD ranks")
	seed := fs.Int64("seed", 0, "fixed RNG seed (0 = seed from OS entropy)")
	iters := fs.Int("iters", 0, "override MaxIterations (0 = default)")
	t0 := fs.Float64("t0", 0, "override initial temperature (0 = default)")
	tend := fs.Float64("tend", -1, "override final temperature (< 0 = default)")
	withMetrics := fs.Bool("metrics", false, "record this run's counters on a Prometheus registry")
	metricsAddr := fs.String("metrics-addr", "", "serve the Prometheus handler at this address (requires -metrics)")
	genSpec := fs.String("gen", "", "synthesize a random N,D-regular instance instead of reading a positional path, e.g. -gen 100,4")

	if err := fs.Parse(args); err != nil {
		return exitMalformedArgs
	}

	var inputPath string
	var edges []graph.Edge
	var err error

	if *genSpec != "" {
		if fs.NArg() != 0 {
			fmt.Fprintln(os.Stderr, "odp-anneal: -gen and a positional input path are mutually exclusive")
			return exitMalformedArgs
		}
		n, d, perr := parseGenSpec(*genSpec)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "odp-anneal: %v\n", perr)
			return exitMalformedArgs
		}
		var genRNG *rng.Stream
		if *seed != 0 {
			genRNG = rng.NewSeeded(*seed)
		} else {
			genRNG = rng.New()
		}
		edges, err = gen.RandomRegular(n, d, genRNG)
		if err != nil {
			fmt.Fprintf(os.Stderr, "odp-anneal: %v\n", err)
			return exitMalformedArgs
		}
		inputPath = fmt.Sprintf("gen-%d-%d.txt", n, d)
	} else {
		if fs.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "odp-anneal: exactly one positional input path is required")
			return exitMissingPath
		}
		inputPath = fs.Arg(0)
		if inputPath == "" {
			return exitMissingPath
		}
		edges, err = odpio.ReadEdgeList(inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "odp-anneal: %v\n", err)
			return exitMalformedArgs
		}
	}

	g, err := graph.NewGraph(edges)
	if err != nil {
		fmt.Fprintf(os.Stderr, "odp-anneal: %v\n", err)
		return exitMalformedArgs
	}
	if !g.Connected() {
		fmt.Fprintln(os.Stderr, "odp-anneal: input graph is disconnected")
		return exitMalformedArgs
	}

	cfg := anneal.DefaultConfig()
	cfg.BFSWorkers = *threads
	if *iters > 0 {
		cfg.MaxIterations = *iters
	}
	if *t0 > 0 {
		cfg.T0 = *t0
	}
	if *tend >= 0 {
		cfg.TEnd = *tend
	}
	if *withMetrics {
		cfg.Recorder = metrics.NewRecorder()
		if *metricsAddr != "" {
			mux := http.NewServeMux()
			mux.Handle("/metrics", cfg.Recorder.Handler())
			srv := &http.Server{Addr: *metricsAddr, Handler: mux}
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					slog.Error("metrics server stopped", "err", err)
				}
			}()
			defer srv.Close()
		}
	} else if *metricsAddr != "" {
		fmt.Fprintln(os.Stderr, "odp-anneal: -metrics-addr requires -metrics")
		return exitMalformedArgs
	}

	var r *rng.Stream
	if *seed != 0 {
		r = rng.NewSeeded(*seed)
	} else {
		r = rng.New()
	}

	slog.Info("odp-anneal starting", "input", inputPath, "n", g.N(), "m", g.M(), "ranks", *ranks)

	final, result, err := anneal.Run(context.Background(), g, *ranks, cfg, r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "odp-anneal: run failed: %v\n", err)
		return exitRunFailed
	}

	outPath := odpio.DerivedOutputPath(inputPath)
	if err := odpio.WriteEdgeList(outPath, final.Edges()); err != nil {
		fmt.Fprintf(os.Stderr, "odp-anneal: %v\n", err)
		return exitRunFailed
	}

	slog.Info("odp-anneal finished",
		"output", outPath, "iterations", result.Iterations,
		"accepted", result.Accepted, "rejected", result.Rejected,
		"acceptance_rate", result.AcceptanceRate(),
		"final_temperature", result.FinalTemperature,
		"final_energy", result.FinalEnergy)

	return exitSuccess
}

// parseGenSpec parses a "-gen N,D" argument into its order and degree.
func parseGenSpec(spec string) (n, d int, err error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("-gen wants \"N,D\", got %q", spec)
	}
	n, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("-gen: invalid N in %q: %w", spec, err)
	}
	d, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("-gen: invalid D in %q: %w", spec, err)
	}
	return n, d, nil
}
