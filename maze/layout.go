package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Layout is an immutable rectangular maze.
// walls[y][x] is true for wall cells; row 0 of walls is the southern edge.
type Layout struct {
	Width, Height int
	Start         Position
	Goals         []Position // in reading order, top row first
	walls         [][]bool
}

// ParseString parses a layout held in a string. See Parse.
func ParseString(text string) (*Layout, error) {
	return Parse(strings.NewReader(text))
}

// Parse reads a layout: one text row per line, '%' walls, 'P' the single
// start, '.' goals, anything else open. Leading and trailing blank lines are
// ignored.
// Complexity: O(W×H).
func Parse(r io.Reader) (*Layout, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: reading layout: %w", err)
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	for len(rows) > 0 && strings.TrimSpace(rows[0]) == "" {
		rows = rows[1:]
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	l := &Layout{Width: w, Height: h, walls: make([][]bool, h)}
	for y := range l.walls {
		l.walls[y] = make([]bool, w)
	}
	starts := 0
	for row, line := range rows {
		y := h - 1 - row
		for x := 0; x < w; x++ {
			switch line[x] {
			case WallCell:
				l.walls[y][x] = true
			case StartCell:
				l.Start = Position{X: x, Y: y}
				starts++
			case GoalCell:
				l.Goals = append(l.Goals, Position{X: x, Y: y})
			}
		}
	}
	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrDuplicateStart, starts)
	}

	return l, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (l *Layout) InBounds(p Position) bool {
	return p.X >= 0 && p.X < l.Width && p.Y >= 0 && p.Y < l.Height
}

// IsWall reports whether p is a wall. Cells outside the grid count as walls.
func (l *Layout) IsWall(p Position) bool {
	return !l.InBounds(p) || l.walls[p.Y][p.X]
}

// OpenCells returns the number of non-wall cells.
func (l *Layout) OpenCells() int {
	n := 0
	for _, row := range l.walls {
		for _, wall := range row {
			if !wall {
				n++
			}
		}
	}

	return n
}

// Index maps p to a row-major index: y*Width + x.
// Complexity: O(1).
func (l *Layout) Index(p Position) int {
	return p.Y*l.Width + p.X
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (l *Layout) Coordinate(idx int) Position {
	return Position{X: idx % l.Width, Y: idx / l.Width}
}

// Trace replays actions from the start and returns every position visited,
// the start included. It fails with ErrIllegalAction on a blocked move.
func (l *Layout) Trace(actions []Direction) ([]Position, error) {
	out := make([]Position, 0, len(actions)+1)
	cur := l.Start
	out = append(out, cur)
	for i, a := range actions {
		next := cur.Add(a)
		if l.IsWall(next) {
			return out, fmt.Errorf("%w: step %d %s from %s hits a wall", ErrIllegalAction, i, a, cur)
		}
		cur = next
		out = append(out, cur)
	}

	return out, nil
}
