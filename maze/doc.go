// Package maze treats a rectangular text layout of walls and open cells as a
// search problem, so the strategies in package search can drive an agent
// through it.
//
// What:
//
//   - Layout parses the classic layout text: '%' is a wall, 'P' the start,
//     '.' a goal, anything else open floor.
//   - PositionProblem moves one cell North, South, East or West per action;
//     each step costs CostFunc(next position), unit by default.
//   - ManhattanHeuristic and EuclideanHeuristic estimate the remaining
//     distance to the goal; both are admissible for unit step costs.
//   - StayEastCost and StayWestCost bias the cost of a step by its column.
//
// Coordinates:
//
// X grows to the east. Y grows to the north: the first text row is the top of
// the maze, y = Height-1.
//
// Complexity:
//
//   - Parse:      O(W×H) time and memory.
//   - Successors: O(1) per call (at most four neighbors).
//   - Trace:      O(len(actions)).
//
// Errors:
//
//   - ErrEmptyGrid:      layout has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNoStart:        no 'P' cell.
//   - ErrDuplicateStart: more than one 'P' cell.
//   - ErrNoGoal:         no '.' cell and no WithGoal option.
//   - ErrIllegalAction:  an action walks into a wall or off the grid.
package maze
