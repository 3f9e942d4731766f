package maze

import (
	"math"

	"github.com/katalvlaran/lvsearch/problem"
)

// goaler is implemented by problems that expose a single goal cell.
type goaler interface {
	Goal() Position
}

// unwrapper is implemented by problem wrappers such as problem.Instrumented.
type unwrapper interface {
	Unwrap() problem.Problem[Position, Direction]
}

// goalOf finds the goal of p, looking through wrappers.
func goalOf(p problem.Problem[Position, Direction]) (Position, bool) {
	for p != nil {
		if g, ok := p.(goaler); ok {
			return g.Goal(), true
		}
		u, ok := p.(unwrapper)
		if !ok {
			break
		}
		p = u.Unwrap()
	}

	return Position{}, false
}

// ManhattanHeuristic is |dx| + |dy| to the goal of p, or 0 when p has no
// single goal. Admissible and consistent for unit step costs.
func ManhattanHeuristic(state Position, p problem.Problem[Position, Direction]) float64 {
	goal, ok := goalOf(p)
	if !ok {
		return 0
	}

	return math.Abs(float64(state.X-goal.X)) + math.Abs(float64(state.Y-goal.Y))
}

// EuclideanHeuristic is the straight-line distance to the goal of p, or 0
// when p has no single goal.
func EuclideanHeuristic(state Position, p problem.Problem[Position, Direction]) float64 {
	goal, ok := goalOf(p)
	if !ok {
		return 0
	}

	return math.Hypot(float64(state.X-goal.X), float64(state.Y-goal.Y))
}

// ManhattanTo binds the Manhattan distance to a fixed goal, for problems that
// do not expose one.
func ManhattanTo(goal Position) problem.Heuristic[Position, Direction] {
	return func(state Position, _ problem.Problem[Position, Direction]) float64 {
		return math.Abs(float64(state.X-goal.X)) + math.Abs(float64(state.Y-goal.Y))
	}
}
