package problem

import "sync"

// Instrumented wraps a Problem and records every state whose successors were
// requested, i.e. every expansion a strategy performed.
// It is safe for concurrent use.
type Instrumented[S comparable, A any] struct {
	inner Problem[S, A]

	mu       sync.Mutex
	expanded []S
	counts   map[S]int
}

// Instrument wraps p. The wrapper forwards every call to p unchanged.
func Instrument[S comparable, A any](p Problem[S, A]) *Instrumented[S, A] {
	return &Instrumented[S, A]{
		inner:  p,
		counts: make(map[S]int),
	}
}

// StartState forwards to the wrapped problem.
func (ip *Instrumented[S, A]) StartState() S { return ip.inner.StartState() }

// IsGoal forwards to the wrapped problem.
func (ip *Instrumented[S, A]) IsGoal(state S) bool { return ip.inner.IsGoal(state) }

// Successors records the expansion of state and forwards to the wrapped problem.
func (ip *Instrumented[S, A]) Successors(state S) []Successor[S, A] {
	ip.mu.Lock()
	ip.expanded = append(ip.expanded, state)
	ip.counts[state]++
	ip.mu.Unlock()

	return ip.inner.Successors(state)
}

// CostOfActions forwards to the wrapped problem.
func (ip *Instrumented[S, A]) CostOfActions(actions []A) (float64, error) {
	return ip.inner.CostOfActions(actions)
}

// Unwrap returns the wrapped problem.
func (ip *Instrumented[S, A]) Unwrap() Problem[S, A] { return ip.inner }

// Expanded returns the number of Successors calls so far.
func (ip *Instrumented[S, A]) Expanded() int {
	ip.mu.Lock()
	defer ip.mu.Unlock()

	return len(ip.expanded)
}

// ExpandedStates returns a copy of the expanded states in call order.
func (ip *Instrumented[S, A]) ExpandedStates() []S {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	out := make([]S, len(ip.expanded))
	copy(out, ip.expanded)

	return out
}

// TimesExpanded returns how often state was expanded.
func (ip *Instrumented[S, A]) TimesExpanded(state S) int {
	ip.mu.Lock()
	defer ip.mu.Unlock()

	return ip.counts[state]
}

// Reset clears the recorded expansions.
func (ip *Instrumented[S, A]) Reset() {
	ip.mu.Lock()
	ip.expanded = nil
	ip.counts = make(map[S]int)
	ip.mu.Unlock()
}
