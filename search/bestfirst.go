package search

import (
	"github.com/katalvlaran/lvsearch/fringe"
	"github.com/katalvlaran/lvsearch/problem"
)

// UCS runs uniform-cost search on p: the frontier is a priority queue keyed by
// the accumulated path cost g from the start.
//
// Because the cheapest known entry is always popped next, the first time a goal
// is popped its cost is optimal for any non-negative step costs. Visited states
// are never pushed again; stale duplicates are skipped when popped. A state's
// parent link is committed when it is popped, so the reconstructed path always
// matches the cost of the entry that won.
//
// Complexity: O((V + E) log E) with lazy decrease-key.
func UCS[S comparable, A any](p problem.Problem[S, A], opts ...Option) (Result[A], error) {
	r, err := newRunner(StrategyUCS, p, opts)
	if err != nil {
		return Result[A]{}, err
	}

	return r.bestFirst(func(n node[S, A]) float64 { return n.cost })
}

// AStar runs A* search on p, ordering the frontier by g + h(state).
//
// A nil heuristic means problem.NullHeuristic, which reduces A* to UCS.
// The result is optimal when h is admissible and consistent; with an
// admissible but inconsistent h a state is still expanded at most once, so
// optimality is only guaranteed for consistent heuristics. A heuristic that
// overestimates silently degrades optimality; nothing detects it.
//
// h is evaluated once per pushed entry.
func AStar[S comparable, A any](p problem.Problem[S, A], h problem.Heuristic[S, A], opts ...Option) (Result[A], error) {
	r, err := newRunner(StrategyAStar, p, opts)
	if err != nil {
		return Result[A]{}, err
	}
	if h == nil {
		h = problem.NullHeuristic[S, A]
	}

	return r.bestFirst(func(n node[S, A]) float64 { return n.cost + h(n.state, p) })
}

// bestFirst is the priority-queue loop shared by UCS and A*.
func (r *runner[S, A]) bestFirst(priority func(node[S, A]) float64) (Result[A], error) {
	frontier := fringe.NewPriorityQueue[node[S, A]](0)
	start := rootNode[S, A](r.prob.StartState())
	r.links.record(start)
	frontier.Push(start, priority(start))

	r.opts.Logger.Debug("search started", "strategy", string(r.strategy))
	for !frontier.IsEmpty() {
		if err := r.cancelled(); err != nil {
			return r.finish(err)
		}

		n := frontier.Pop()
		if r.isVisited(n.state) {
			continue // stale entry
		}
		if r.prob.IsGoal(n.state) {
			return r.succeed(n)
		}
		succ, err := r.expand(n)
		if err != nil {
			return r.finish(err)
		}
		r.links.record(n)

		for _, s := range succ {
			if r.isVisited(s.State) {
				continue
			}
			c := n.child(s.State, s.Action, s.Cost)
			frontier.Push(c, priority(c))
			r.res.Generated++
		}
	}

	return r.exhaust()
}
