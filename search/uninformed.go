package search

import (
	"github.com/katalvlaran/lvsearch/fringe"
	"github.com/katalvlaran/lvsearch/problem"
)

// DFS runs graph depth-first search on p and returns the first solution found.
//
// The frontier is a Stack. A state is marked visited when it is expanded and
// successors already visited are not pushed; a state may sit on the stack more
// than once, but only its first pop expands it. Its parent link is committed at
// that pop, so the link always describes the branch actually explored.
// The goal test runs at pop time, so a start state that is a goal yields an
// empty action list.
//
// The path is valid but not necessarily shortest.
// Complexity: O(V + E) expansions and pushes.
func DFS[S comparable, A any](p problem.Problem[S, A], opts ...Option) (Result[A], error) {
	r, err := newRunner(StrategyDFS, p, opts)
	if err != nil {
		return Result[A]{}, err
	}

	return r.uninformed(fringe.NewStack[node[S, A]](0), false)
}

// BFS runs graph breadth-first search on p.
//
// The frontier is a Queue and a state is never queued twice: the discovered
// set (start included) is checked when successors are generated, and the
// parent link is recorded at first discovery and never overwritten. This is
// what makes the result shortest by number of actions.
// The goal test runs at pop time.
//
// Complexity: O(V + E).
func BFS[S comparable, A any](p problem.Problem[S, A], opts ...Option) (Result[A], error) {
	r, err := newRunner(StrategyBFS, p, opts)
	if err != nil {
		return Result[A]{}, err
	}

	return r.uninformed(fringe.NewQueue[node[S, A]](0), true)
}

// uninformed is the loop shared by DFS and BFS; only the frontier and the
// duplicate policy differ.
//
// linkOnDiscovery == true (BFS): successors already discovered are skipped and
// links are recorded when pushed.
// linkOnDiscovery == false (DFS): successors already expanded are skipped and
// links are committed when a state is popped for expansion.
func (r *runner[S, A]) uninformed(frontier fringe.Fringe[node[S, A]], linkOnDiscovery bool) (Result[A], error) {
	start := rootNode[S, A](r.prob.StartState())
	r.links.record(start)
	frontier.Push(start)

	r.opts.Logger.Debug("search started", "strategy", string(r.strategy))
	for !frontier.IsEmpty() {
		if err := r.cancelled(); err != nil {
			return r.finish(err)
		}

		n := frontier.Pop()
		if r.prob.IsGoal(n.state) {
			return r.succeed(n)
		}
		if r.isVisited(n.state) {
			continue
		}
		succ, err := r.expand(n)
		if err != nil {
			return r.finish(err)
		}
		if !linkOnDiscovery {
			r.links.record(n)
		}

		for _, s := range succ {
			if r.isVisited(s.State) {
				continue
			}
			c := n.child(s.State, s.Action, s.Cost)
			if linkOnDiscovery && !r.links.record(c) {
				continue // already discovered
			}
			frontier.Push(c)
			r.res.Generated++
		}
	}

	return r.exhaust()
}
