// Package problem defines the contract every search strategy consumes:
// a start state, a goal test, successor enumeration and action-sequence cost.
//
// States are opaque comparable values; the search core only uses them as map
// keys. Actions are opaque values returned verbatim in a solution.
//
// Calling a method with a state that the problem never produced (neither the
// start state nor a successor) is a contract violation with undefined behavior.
package problem

// Successor is one outgoing transition of a state: the next state, the action
// that reaches it, and the non-negative cost of that single step.
type Successor[S comparable, A any] struct {
	State  S
	Action A
	Cost   float64
}

// Problem is an abstract search problem over states S and actions A.
type Problem[S comparable, A any] interface {
	// StartState returns the state the search begins from.
	StartState() S

	// IsGoal reports whether state satisfies the goal test.
	IsGoal(state S) bool

	// Successors returns the transitions out of state, each with Cost >= 0.
	// The order of the slice is the order in which strategies consider them.
	Successors(state S) []Successor[S, A]

	// CostOfActions returns the total cost of a legal action sequence taken
	// from the start state. An illegal sequence yields an error.
	CostOfActions(actions []A) (float64, error)
}

// Heuristic estimates the remaining cost from state to the nearest goal of p.
// It must be non-negative. A* returns optimal paths only when the heuristic is
// admissible (never overestimates); this is not checked.
type Heuristic[S comparable, A any] func(state S, p Problem[S, A]) float64

// NullHeuristic is the trivial heuristic. With it A* behaves as uniform-cost search.
func NullHeuristic[S comparable, A any](S, Problem[S, A]) float64 {
	return 0
}
