// Package lvsearch is a small toolkit for solving state-space search
// problems: find a sequence of actions that leads from a start state to a
// goal state.
//
// What is inside?
//
//	problem/      - the Problem[S, A] contract, Successor, Heuristic, Instrument
//	fringe/       - Stack, Queue and PriorityQueue frontier containers
//	search/       - DFS, BFS, UCS and A*, functional options, strategy registry
//	maze/         - grid mazes from text layouts, with Manhattan/Euclidean heuristics
//	graphproblem/ - explicit weighted digraphs loaded from YAML
//	metrics/      - Prometheus observer for search calls
//	cmd/lvsearch  - command-line solver
//
// Every solver takes a problem and returns a Result: the actions, whether a
// goal was reached, the path cost and expansion counters. "No path" is
// Result.Found == false, never an error.
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    5     1
//	    │     │
//	    C──1──D
//
// With A as start and D as goal, DFS (LIFO, successors pushed in order)
// returns A→C→D at cost 6, while BFS, UCS and A* return A→B→D at cost 2.
//
//	go get github.com/katalvlaran/lvsearch
package lvsearch
