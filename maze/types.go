package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze operations.
var (
	// ErrEmptyGrid indicates the layout has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: layout must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrNoStart indicates the layout has no start cell.
	ErrNoStart = errors.New("maze: layout has no start cell 'P'")
	// ErrDuplicateStart indicates the layout has more than one start cell.
	ErrDuplicateStart = errors.New("maze: layout has more than one start cell 'P'")
	// ErrNoGoal indicates there is no goal cell to search for.
	ErrNoGoal = errors.New("maze: no goal cell")
	// ErrIllegalAction indicates an action sequence runs into a wall or off the grid.
	ErrIllegalAction = errors.New("maze: illegal action")
)

// Layout cell markers.
const (
	WallCell  = '%'
	StartCell = 'P'
	GoalCell  = '.'
	OpenCell  = ' '
)

// Position is a cell coordinate. Y grows northwards.
type Position struct {
	X, Y int
}

// String formats the position as "(x,y)".
func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Add returns p moved by the vector of d.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Vector()

	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Direction is a single move of the agent.
type Direction int

const (
	// Stop keeps the agent in place.
	Stop Direction = iota
	// North moves one cell up (y+1).
	North
	// South moves one cell down (y-1).
	South
	// East moves one cell right (x+1).
	East
	// West moves one cell left (x-1).
	West
)

// moves is the order in which neighbors are enumerated.
var moves = [...]Direction{North, South, East, West}

// Vector returns the (dx, dy) displacement of d.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// CostFunc prices a step by the position it enters. It must be non-negative.
type CostFunc func(next Position) float64

// UnitCost charges 1 for every step.
func UnitCost(Position) float64 { return 1 }
