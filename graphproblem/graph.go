package graphproblem

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvsearch/problem"
)

// Sentinel errors for graph construction and replay.
var (
	// ErrNoStart indicates the graph has no start state.
	ErrNoStart = errors.New("graphproblem: start state is empty")

	// ErrNoGoals indicates the graph has no goal state.
	ErrNoGoals = errors.New("graphproblem: no goal states")

	// ErrEmptyState indicates an edge endpoint or goal is the empty string.
	ErrEmptyState = errors.New("graphproblem: state name is empty")

	// ErrNegativeCost indicates an edge with a negative cost.
	ErrNegativeCost = errors.New("graphproblem: negative edge cost")

	// ErrNegativeHeuristic indicates a negative heuristic estimate.
	ErrNegativeHeuristic = errors.New("graphproblem: negative heuristic value")

	// ErrUnknownState indicates a reference to a state that appears nowhere in the graph.
	ErrUnknownState = errors.New("graphproblem: unknown state")

	// ErrIllegalAction indicates an action with no matching outgoing edge.
	ErrIllegalAction = errors.New("graphproblem: illegal action")
)

// Graph is a directed graph with labelled, weighted edges, a start state and
// a set of goal states. It implements problem.Problem[string, string].
type Graph struct {
	start  string
	goals  map[string]struct{}
	states map[string]struct{}
	adj    map[string][]problem.Successor[string, string]
	order  []string // source states in first-insertion order
	h      map[string]float64
	edges  int
}

var _ problem.Problem[string, string] = (*Graph)(nil)

// New returns a graph with the given start state and goal states and no edges.
func New(start string, goals ...string) (*Graph, error) {
	if start == "" {
		return nil, ErrNoStart
	}
	if len(goals) == 0 {
		return nil, ErrNoGoals
	}
	g := &Graph{
		start:  start,
		goals:  make(map[string]struct{}, len(goals)),
		states: map[string]struct{}{start: {}},
		adj:    make(map[string][]problem.Successor[string, string]),
		h:      make(map[string]float64),
	}
	for _, goal := range goals {
		if goal == "" {
			return nil, fmt.Errorf("%w: goal", ErrEmptyState)
		}
		g.goals[goal] = struct{}{}
		g.states[goal] = struct{}{}
	}

	return g, nil
}

// AddEdge adds a directed edge from -> to. An empty action is labelled
// "from->to". Parallel edges are kept; they are offered in insertion order.
func (g *Graph) AddEdge(from, to, action string, cost float64) error {
	if from == "" || to == "" {
		return fmt.Errorf("%w: edge %q -> %q", ErrEmptyState, from, to)
	}
	if cost < 0 {
		return fmt.Errorf("%w: %s -> %s costs %g", ErrNegativeCost, from, to, cost)
	}
	if action == "" {
		action = from + "->" + to
	}
	if _, seen := g.adj[from]; !seen {
		g.order = append(g.order, from)
	}
	g.adj[from] = append(g.adj[from], problem.Successor[string, string]{State: to, Action: action, Cost: cost})
	g.states[from] = struct{}{}
	g.states[to] = struct{}{}
	g.edges++

	return nil
}

// SetHeuristic records the estimate for state used by Heuristic.
// The state must already be part of the graph and value must be non-negative.
func (g *Graph) SetHeuristic(state string, value float64) error {
	if _, ok := g.states[state]; !ok {
		return fmt.Errorf("%w: heuristic for %q", ErrUnknownState, state)
	}
	if value < 0 {
		return fmt.Errorf("%w: %q estimated at %g", ErrNegativeHeuristic, state, value)
	}
	g.h[state] = value

	return nil
}

// Heuristic returns the tabulated heuristic. States without an entry score 0.
// The table is read at call time, so later SetHeuristic calls are visible.
func (g *Graph) Heuristic() problem.Heuristic[string, string] {
	return func(state string, _ problem.Problem[string, string]) float64 {
		return g.h[state]
	}
}

// StartState returns the start state.
func (g *Graph) StartState() string { return g.start }

// IsGoal reports whether state is one of the goal states.
func (g *Graph) IsGoal(state string) bool {
	_, ok := g.goals[state]

	return ok
}

// Successors returns the outgoing edges of state in insertion order.
// The returned slice is a copy.
func (g *Graph) Successors(state string) []problem.Successor[string, string] {
	out := make([]problem.Successor[string, string], len(g.adj[state]))
	copy(out, g.adj[state])

	return out
}

// CostOfActions replays actions from the start state, following for each
// action the first outgoing edge carrying that label.
func (g *Graph) CostOfActions(actions []string) (float64, error) {
	cur, total := g.start, 0.0
	for i, a := range actions {
		next, cost, ok := g.step(cur, a)
		if !ok {
			return 0, fmt.Errorf("%w: step %d %q from %q", ErrIllegalAction, i, a, cur)
		}
		cur = next
		total += cost
	}

	return total, nil
}

// Trace replays actions from the start state and returns every state visited,
// the start included.
func (g *Graph) Trace(actions []string) ([]string, error) {
	out := make([]string, 0, len(actions)+1)
	cur := g.start
	out = append(out, cur)
	for i, a := range actions {
		next, _, ok := g.step(cur, a)
		if !ok {
			return out, fmt.Errorf("%w: step %d %q from %q", ErrIllegalAction, i, a, cur)
		}
		cur = next
		out = append(out, cur)
	}

	return out, nil
}

func (g *Graph) step(from, action string) (string, float64, bool) {
	for _, s := range g.adj[from] {
		if s.Action == action {
			return s.State, s.Cost, true
		}
	}

	return "", 0, false
}

// States returns every state of the graph in sorted order.
func (g *Graph) States() []string {
	out := make([]string, 0, len(g.states))
	for s := range g.states {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// Goals returns the goal states in sorted order.
func (g *Graph) Goals() []string {
	out := make([]string, 0, len(g.goals))
	for s := range g.goals {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// EdgeCount returns the number of edges, parallel edges included.
func (g *Graph) EdgeCount() int { return g.edges }
