package maze

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/problem"
)

// ProblemOption configures a PositionProblem.
type ProblemOption func(*PositionProblem)

// WithCostFunc prices each step with fn instead of UnitCost.
func WithCostFunc(fn CostFunc) ProblemOption {
	return func(pp *PositionProblem) {
		if fn != nil {
			pp.cost = fn
		}
	}
}

// WithGoal overrides the goal taken from the layout.
func WithGoal(goal Position) ProblemOption {
	return func(pp *PositionProblem) {
		pp.goal = goal
		pp.hasGoal = true
	}
}

// WithStart overrides the start taken from the layout.
func WithStart(start Position) ProblemOption {
	return func(pp *PositionProblem) {
		pp.start = start
	}
}

// PositionProblem searches for a path from a start cell to a single goal cell.
// It is read-only after construction and safe for concurrent searches.
type PositionProblem struct {
	layout  *Layout
	start   Position
	goal    Position
	hasGoal bool
	cost    CostFunc
}

var _ problem.Problem[Position, Direction] = (*PositionProblem)(nil)

// NewPositionProblem builds the problem over l. The goal defaults to the first
// goal cell of the layout (reading order); ErrNoGoal if there is none.
func NewPositionProblem(l *Layout, opts ...ProblemOption) (*PositionProblem, error) {
	if l == nil {
		return nil, ErrEmptyGrid
	}
	pp := &PositionProblem{layout: l, start: l.Start, cost: UnitCost}
	if len(l.Goals) > 0 {
		pp.goal, pp.hasGoal = l.Goals[0], true
	}
	for _, opt := range opts {
		opt(pp)
	}
	if !pp.hasGoal {
		return nil, ErrNoGoal
	}
	if l.IsWall(pp.start) {
		return nil, fmt.Errorf("maze: start %s is a wall", pp.start)
	}
	if l.IsWall(pp.goal) {
		return nil, fmt.Errorf("%w: goal %s is a wall", ErrNoGoal, pp.goal)
	}

	return pp, nil
}

// Layout returns the underlying layout.
func (pp *PositionProblem) Layout() *Layout { return pp.layout }

// Goal returns the goal cell.
func (pp *PositionProblem) Goal() Position { return pp.goal }

// StartState returns the start cell.
func (pp *PositionProblem) StartState() Position { return pp.start }

// IsGoal reports whether state is the goal cell.
func (pp *PositionProblem) IsGoal(state Position) bool { return state == pp.goal }

// Successors returns the open neighbors of state in North, South, East, West order.
func (pp *PositionProblem) Successors(state Position) []problem.Successor[Position, Direction] {
	out := make([]problem.Successor[Position, Direction], 0, len(moves))
	for _, d := range moves {
		next := state.Add(d)
		if pp.layout.IsWall(next) {
			continue
		}
		out = append(out, problem.Successor[Position, Direction]{State: next, Action: d, Cost: pp.cost(next)})
	}

	return out
}

// CostOfActions replays actions from the start and sums the step costs.
// It returns ErrIllegalAction if a move hits a wall.
func (pp *PositionProblem) CostOfActions(actions []Direction) (float64, error) {
	cur, total := pp.start, 0.0
	for i, a := range actions {
		next := cur.Add(a)
		if pp.layout.IsWall(next) {
			return 0, fmt.Errorf("%w: step %d %s from %s hits a wall", ErrIllegalAction, i, a, cur)
		}
		cur = next
		total += pp.cost(cur)
	}

	return total, nil
}

// StayEastCost makes western cells expensive: a step into column x costs 0.5^x.
func StayEastCost(next Position) float64 { return math.Pow(0.5, float64(next.X)) }

// StayWestCost makes eastern cells expensive: a step into column x costs 2^x.
func StayWestCost(next Position) float64 { return math.Pow(2, float64(next.X)) }

// TinyMazePlan returns the fixed route that solves the classic tinyMaze layout
// from its start cell. On any other layout it is almost certainly illegal.
func TinyMazePlan() []Direction {
	s, w := South, West

	return []Direction{s, s, w, s, w, w, s, w}
}
