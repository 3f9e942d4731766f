package search

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvsearch/problem"
)

// runner holds the mutable state of one search call. Nothing in it outlives the call.
type runner[S comparable, A any] struct {
	strategy Strategy
	prob     problem.Problem[S, A]
	opts     Options
	started  time.Time

	visited map[S]struct{} // expanded states
	links   parents[S, A]
	res     Result[A]
}

// newRunner validates the problem and options and prepares per-call state.
func newRunner[S comparable, A any](strategy Strategy, p problem.Problem[S, A], opts []Option) (*runner[S, A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &runner[S, A]{
		strategy: strategy,
		prob:     p,
		opts:     o,
		started:  time.Now(),
		visited:  make(map[S]struct{}),
		links:    make(parents[S, A]),
	}, nil
}

// cancelled reports a wrapped context error once the context is done.
func (r *runner[S, A]) cancelled() error {
	select {
	case <-r.opts.Ctx.Done():
		return fmt.Errorf("search: %s cancelled after %d expansions: %w", r.strategy, r.res.Expanded, r.opts.Ctx.Err())
	default:
		return nil
	}
}

// isVisited reports whether state was already expanded.
func (r *runner[S, A]) isVisited(state S) bool {
	_, ok := r.visited[state]

	return ok
}

// expand enforces the expansion budget and hook, marks n visited, and returns
// its successors. Negative step costs are rejected.
func (r *runner[S, A]) expand(n node[S, A]) ([]problem.Successor[S, A], error) {
	if r.opts.MaxExpansions > 0 && r.res.Expanded >= r.opts.MaxExpansions {
		return nil, fmt.Errorf("%w: %d", ErrExpansionLimit, r.opts.MaxExpansions)
	}
	if err := r.opts.OnExpand(n.depth); err != nil {
		return nil, fmt.Errorf("search: OnExpand at depth %d: %w", n.depth, err)
	}
	r.visited[n.state] = struct{}{}
	r.res.Expanded++

	succ := r.prob.Successors(n.state)
	for _, s := range succ {
		if s.Cost < 0 {
			return nil, fmt.Errorf("%w: %v -> %v cost=%g", ErrNegativeCost, n.state, s.State, s.Cost)
		}
	}

	return succ, nil
}

// succeed records the goal entry and builds the solution.
func (r *runner[S, A]) succeed(goal node[S, A]) (Result[A], error) {
	r.links.record(goal)
	r.res.Actions = r.links.path(goal.state)
	r.res.Found = true
	r.res.Cost = goal.cost
	r.opts.Logger.Debug("goal reached",
		"strategy", string(r.strategy),
		"depth", goal.depth,
		"cost", goal.cost,
		"expanded", r.res.Expanded,
	)

	return r.finish(nil)
}

// exhaust reports the no-solution outcome.
func (r *runner[S, A]) exhaust() (Result[A], error) {
	r.opts.Logger.Debug("frontier exhausted",
		"strategy", string(r.strategy),
		"expanded", r.res.Expanded,
	)

	return r.finish(nil)
}

// finish notifies the observer and returns the accumulated result.
func (r *runner[S, A]) finish(err error) (Result[A], error) {
	if err != nil {
		r.opts.Logger.Debug("search aborted", "strategy", string(r.strategy), "err", err)
	}
	if r.opts.Observer != nil {
		r.opts.Observer.ObserveSearch(Summary{
			Strategy:  r.strategy,
			Found:     r.res.Found,
			Cost:      r.res.Cost,
			Length:    len(r.res.Actions),
			Expanded:  r.res.Expanded,
			Generated: r.res.Generated,
			Duration:  time.Since(r.started),
			Err:       err,
		})
	}

	return r.res, err
}
