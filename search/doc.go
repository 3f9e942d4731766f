// Package search implements the four classic graph-search strategies over an
// abstract problem.Problem: depth-first (DFS), breadth-first (BFS),
// uniform-cost (UCS) and A* (AStar).
//
// What:
//
//   - DFS:   Stack frontier; visited marked at expansion. Returns a valid path.
//   - BFS:   Queue frontier; duplicates suppressed at discovery. Returns a path
//     with the fewest actions.
//   - UCS:   PriorityQueue keyed by accumulated cost g. Returns a cheapest path.
//   - AStar: PriorityQueue keyed by g + h. Returns a cheapest path when h is
//     admissible and consistent; with the null heuristic it is UCS.
//
// Every strategy tests for the goal when an entry is popped, never when it is
// pushed, expands each state at most once, and rebuilds the action sequence
// by walking an explicit parent map from the goal back to the start.
//
// Result:
//
//   - Found == false: the frontier was exhausted, no goal is reachable.
//     This is a normal outcome and err is nil.
//   - Found == true, len(Actions) == 0: the start state is a goal.
//   - err != nil: nil problem, invalid option, cancelled context, expansion
//     budget exceeded, OnExpand hook error, or a negative step cost.
//
// Options:
//
//   - WithContext(ctx)        cancellation and deadlines.
//   - WithMaxExpansions(n)    bounded execution (ErrExpansionLimit).
//   - WithOnExpand(fn)        hook before each expansion; error aborts.
//   - WithLogger(l)           slog debug records.
//   - WithObserver(obs)       Summary on return (see package metrics).
//
// Concurrency:
//
// All frontier, visited and parent structures are created per call, so calls
// are safe to run in parallel as long as the problem tolerates concurrent reads.
//
// Example:
//
//	res, err := search.AStar(p, maze.ManhattanHeuristic, search.WithMaxExpansions(10_000))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !res.Found {
//	    fmt.Println("no solution")
//	}
//	fmt.Println(res.Actions, res.Cost)
package search
