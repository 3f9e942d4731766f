package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/graphproblem"
	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/metrics"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// Heuristic flag values.
const (
	heuristicNull      = "null"
	heuristicManhattan = "manhattan"
	heuristicEuclidean = "euclidean"
	heuristicTable     = "table"
)

var errBadHeuristic = errors.New("unsupported heuristic")

type solveFlags struct {
	strategy      string
	heuristic     string
	costFunc      string
	maxExpansions int
	timeout       time.Duration
	metricsOut    string
	showPath      bool
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Search a maze layout (.lay) or a graph document (.yaml, .yml)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), cmd.OutOrStdout(), a.logger, f, args[0])
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.strategy, "strategy", "s", string(search.StrategyAStar), "search strategy (dfs, bfs, ucs, astar)")
	fl.StringVar(&f.heuristic, "heuristic", "", "A* heuristic: null, manhattan, euclidean (mazes) or table (graphs); default manhattan or table")
	fl.StringVar(&f.costFunc, "cost", "unit", "maze step cost: unit, east, west")
	fl.IntVar(&f.maxExpansions, "max-expansions", 0, "abort after this many expansions (0 = unlimited)")
	fl.DurationVar(&f.timeout, "timeout", 0, "abort after this long (0 = no timeout)")
	fl.StringVar(&f.metricsOut, "metrics-out", "", "write Prometheus metrics to this textfile")
	fl.BoolVar(&f.showPath, "path", false, "also print the states visited along the solution")

	return cmd
}

func runSolve(ctx context.Context, out io.Writer, logger *slog.Logger, f *solveFlags, path string) error {
	strategy, err := search.ParseStrategy(f.strategy)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	runID := uuid.NewString()
	logger = logger.With("run_id", runID, "strategy", strategy.String(), "file", path)

	reg := prometheus.NewRegistry()
	opts := []search.Option{
		search.WithContext(ctx),
		search.WithMaxExpansions(f.maxExpansions),
		search.WithLogger(logger),
		search.WithObserver(metrics.New(reg)),
	}

	logger.Info("search started")
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".lay":
		err = solveMaze(out, f, path, strategy, opts)
	case ".yaml", ".yml":
		err = solveGraph(out, f, path, strategy, opts)
	default:
		err = fmt.Errorf("unsupported file type %q (want .lay, .yaml or .yml)", ext)
	}
	// Failed searches are recorded too, so the textfile is written on every exit.
	if f.metricsOut != "" {
		if werr := prometheus.WriteToTextfile(f.metricsOut, reg); werr != nil {
			werr = fmt.Errorf("writing metrics: %w", werr)
			if err == nil {
				return werr
			}
			logger.Error("writing metrics failed", "error", werr)
		}
	}
	if err != nil {
		logger.Error("search failed", "error", err)
		return err
	}
	logger.Info("search finished")

	return nil
}

func solveMaze(out io.Writer, f *solveFlags, path string, strategy search.Strategy, opts []search.Option) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	layout, err := maze.Parse(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	var cost maze.CostFunc
	switch f.costFunc {
	case "unit", "":
		cost = maze.UnitCost
	case "east":
		cost = maze.StayEastCost
	case "west":
		cost = maze.StayWestCost
	default:
		return fmt.Errorf("unsupported cost function %q", f.costFunc)
	}
	pp, err := maze.NewPositionProblem(layout, maze.WithCostFunc(cost))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	var h problem.Heuristic[maze.Position, maze.Direction]
	switch f.heuristic {
	case heuristicManhattan, "":
		h = maze.ManhattanHeuristic
	case heuristicEuclidean:
		h = maze.EuclideanHeuristic
	case heuristicNull:
		h = problem.NullHeuristic[maze.Position, maze.Direction]
	default:
		return fmt.Errorf("%w %q for a maze", errBadHeuristic, f.heuristic)
	}

	res, err := search.Run[maze.Position, maze.Direction](strategy, pp, h, opts...)
	if err != nil {
		return err
	}
	report(out, strategy, res)
	if f.showPath && res.Found {
		cells, err := layout.Trace(res.Actions)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "path: %s\n", join(cells))
	}

	return nil
}

func solveGraph(out io.Writer, f *solveFlags, path string, strategy search.Strategy, opts []search.Option) error {
	g, err := graphproblem.LoadFile(path)
	if err != nil {
		return err
	}

	var h problem.Heuristic[string, string]
	switch f.heuristic {
	case heuristicTable, "":
		h = g.Heuristic()
	case heuristicNull:
		h = problem.NullHeuristic[string, string]
	default:
		return fmt.Errorf("%w %q for a graph", errBadHeuristic, f.heuristic)
	}

	res, err := search.Run[string, string](strategy, g, h, opts...)
	if err != nil {
		return err
	}
	report(out, strategy, res)
	if f.showPath && res.Found {
		states, err := g.Trace(res.Actions)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "path: %s\n", strings.Join(states, " "))
	}

	return nil
}

func report[A any](out io.Writer, strategy search.Strategy, res search.Result[A]) {
	fmt.Fprintf(out, "strategy: %s\n", strategy)
	if !res.Found {
		fmt.Fprintf(out, "found: false\nexpanded: %d\n", res.Expanded)
		return
	}
	fmt.Fprintf(out, "found: true\ncost: %g\nlength: %d\nexpanded: %d\n", res.Cost, len(res.Actions), res.Expanded)
	fmt.Fprintf(out, "actions: %s\n", join(res.Actions))
}

func join[T any](items []T) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprint(it)
	}

	return strings.Join(parts, " ")
}
