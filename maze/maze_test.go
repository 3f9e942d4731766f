package maze_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// tinyMaze: start at (5,5), goal at (1,1); the shortest route takes 8 steps.
const tinyMaze = `%%%%%%%
%    P%
% %%% %
%  %  %
%%   %%
%. %%%%
%%%%%%%
`

// openMaze has two equally short corridors around a central pillar.
const openMaze = `%%%%%
%P  %
% % %
%  .%
%%%%%
`

func mustProblem(t *testing.T, text string, opts ...maze.ProblemOption) *maze.PositionProblem {
	t.Helper()
	l, err := maze.ParseString(text)
	require.NoError(t, err)
	pp, err := maze.NewPositionProblem(l, opts...)
	require.NoError(t, err)

	return pp
}

// ------------------------------------------------------------------------
// 1. Layout parsing.
// ------------------------------------------------------------------------

func TestParse_TinyMaze(t *testing.T) {
	l, err := maze.ParseString(tinyMaze)
	require.NoError(t, err)
	assert.Equal(t, 7, l.Width)
	assert.Equal(t, 7, l.Height)
	assert.Equal(t, maze.Position{X: 5, Y: 5}, l.Start)
	assert.Equal(t, []maze.Position{{X: 1, Y: 1}}, l.Goals)
	assert.True(t, l.IsWall(maze.Position{X: 0, Y: 0}))
	assert.True(t, l.IsWall(maze.Position{X: -1, Y: 3}), "outside counts as wall")
	assert.False(t, l.IsWall(maze.Position{X: 4, Y: 3}))
	assert.Equal(t, 16, l.OpenCells())
}

func TestParse_CRLFAndTrailingBlankLines(t *testing.T) {
	text := strings.ReplaceAll(openMaze, "\n", "\r\n") + "\r\n\r\n"
	l, err := maze.ParseString(text)
	require.NoError(t, err)
	assert.Equal(t, 5, l.Width)
	assert.Equal(t, 5, l.Height)
}

func TestParse_LeadingBlankLines(t *testing.T) {
	l, err := maze.ParseString("\n  \n%%%%\n%P.%\n%%%%\n")
	require.NoError(t, err)
	assert.Equal(t, 4, l.Width)
	assert.Equal(t, 3, l.Height)
	assert.Equal(t, maze.Position{X: 1, Y: 1}, l.Start)
	assert.Equal(t, []maze.Position{{X: 2, Y: 1}}, l.Goals)
}

func TestParse_Errors(t *testing.T) {
	_, err := maze.ParseString("")
	assert.ErrorIs(t, err, maze.ErrEmptyGrid)

	_, err = maze.ParseString("\n\n")
	assert.ErrorIs(t, err, maze.ErrEmptyGrid)

	_, err = maze.ParseString("%%%\n%P\n%%%\n")
	assert.ErrorIs(t, err, maze.ErrNonRectangular)

	_, err = maze.ParseString("%%%\n%.%\n%%%\n")
	assert.ErrorIs(t, err, maze.ErrNoStart)

	_, err = maze.ParseString("%%%%\n%PP%\n%%%%\n")
	assert.ErrorIs(t, err, maze.ErrDuplicateStart)
}

func TestIndexCoordinateRoundTrip(t *testing.T) {
	l, err := maze.ParseString(tinyMaze)
	require.NoError(t, err)
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			p := maze.Position{X: x, Y: y}
			assert.Equal(t, p, l.Coordinate(l.Index(p)))
		}
	}
}

// ------------------------------------------------------------------------
// 2. PositionProblem contract.
// ------------------------------------------------------------------------

func TestNewPositionProblem_Goal(t *testing.T) {
	l, err := maze.ParseString("%%%%\n%P %\n%%%%\n")
	require.NoError(t, err)
	_, err = maze.NewPositionProblem(l)
	assert.ErrorIs(t, err, maze.ErrNoGoal)

	pp, err := maze.NewPositionProblem(l, maze.WithGoal(maze.Position{X: 2, Y: 1}))
	require.NoError(t, err)
	assert.Equal(t, maze.Position{X: 2, Y: 1}, pp.Goal())

	_, err = maze.NewPositionProblem(l, maze.WithGoal(maze.Position{X: 0, Y: 0}))
	assert.ErrorIs(t, err, maze.ErrNoGoal)
}

func TestSuccessors_OrderAndWalls(t *testing.T) {
	pp := mustProblem(t, tinyMaze)
	// (5,3): north (5,4) open, south (5,2) wall, east (6,3) wall, west (4,3) open.
	succ := pp.Successors(maze.Position{X: 5, Y: 3})
	require.Len(t, succ, 2)
	assert.Equal(t, maze.North, succ[0].Action)
	assert.Equal(t, maze.Position{X: 5, Y: 4}, succ[0].State)
	assert.Equal(t, maze.West, succ[1].Action)
	assert.Equal(t, 1.0, succ[1].Cost)
}

func TestCostOfActions(t *testing.T) {
	pp := mustProblem(t, tinyMaze)
	s, w := maze.South, maze.West
	plan := []maze.Direction{s, s, w, s, w, w, s, w}

	cost, err := pp.CostOfActions(plan)
	require.NoError(t, err)
	assert.Equal(t, 8.0, cost)

	_, err = pp.CostOfActions([]maze.Direction{maze.East})
	assert.ErrorIs(t, err, maze.ErrIllegalAction)

	path, err := pp.Layout().Trace(plan)
	require.NoError(t, err)
	assert.Len(t, path, 9)
	assert.Equal(t, pp.Goal(), path[len(path)-1])
}

func TestTinyMazePlan(t *testing.T) {
	pp := mustProblem(t, tinyMaze)
	plan := maze.TinyMazePlan()

	cost, err := pp.CostOfActions(plan)
	require.NoError(t, err)
	assert.Equal(t, 8.0, cost)

	cells, err := pp.Layout().Trace(plan)
	require.NoError(t, err)
	assert.True(t, pp.IsGoal(cells[len(cells)-1]))

	res, err := search.BFS[maze.Position, maze.Direction](pp)
	require.NoError(t, err)
	assert.Equal(t, plan, res.Actions)
}

func TestCostFunctions(t *testing.T) {
	assert.Equal(t, 1.0, maze.UnitCost(maze.Position{X: 9}))
	assert.Equal(t, 0.25, maze.StayEastCost(maze.Position{X: 2}))
	assert.Equal(t, 8.0, maze.StayWestCost(maze.Position{X: 3}))
}

func TestHeuristics(t *testing.T) {
	pp := mustProblem(t, tinyMaze)
	start := pp.StartState()
	assert.Equal(t, 8.0, maze.ManhattanHeuristic(start, pp))
	assert.InDelta(t, 5.6568, maze.EuclideanHeuristic(start, pp), 1e-3)
	assert.Equal(t, 0.0, maze.ManhattanHeuristic(pp.Goal(), pp))

	// Wrapped problems still expose their goal.
	ip := problem.Instrument[maze.Position, maze.Direction](pp)
	assert.Equal(t, 8.0, maze.ManhattanHeuristic(start, ip))
	assert.Equal(t, 8.0, maze.ManhattanTo(pp.Goal())(start, nil))
}

// ------------------------------------------------------------------------
// 3. Searching mazes.
// ------------------------------------------------------------------------

func TestSearch_TinyMaze(t *testing.T) {
	pp := mustProblem(t, tinyMaze)

	bfs, err := search.BFS[maze.Position, maze.Direction](pp)
	require.NoError(t, err)
	assert.Len(t, bfs.Actions, 8)

	ucs, err := search.UCS[maze.Position, maze.Direction](pp)
	require.NoError(t, err)
	assert.Equal(t, 8.0, ucs.Cost)

	astar, err := search.AStar[maze.Position, maze.Direction](pp, maze.ManhattanHeuristic)
	require.NoError(t, err)
	assert.Equal(t, 8.0, astar.Cost)
	assert.LessOrEqual(t, astar.Expanded, ucs.Expanded)

	dfs, err := search.DFS[maze.Position, maze.Direction](pp)
	require.NoError(t, err)
	require.True(t, dfs.Found)
	cost, err := pp.CostOfActions(dfs.Actions)
	require.NoError(t, err)
	assert.Equal(t, dfs.Cost, cost)
}

func TestSearch_StayEastPrefersEasternCorridor(t *testing.T) {
	// Two four-step routes from P to (3,1): east along the top row then south,
	// or south down the west column then east. The cost function picks one.
	const text = `%%%%%
%P  %
% % %
%. .%
%%%%%
`
	l, err := maze.ParseString(text)
	require.NoError(t, err)
	goal := maze.Position{X: 3, Y: 1}
	e, s := maze.East, maze.South

	east, err := maze.NewPositionProblem(l, maze.WithGoal(goal), maze.WithCostFunc(maze.StayEastCost))
	require.NoError(t, err)
	res, err := search.UCS[maze.Position, maze.Direction](east)
	require.NoError(t, err)
	assert.Equal(t, []maze.Direction{e, e, s, s}, res.Actions)
	assert.Equal(t, 0.625, res.Cost)

	west, err := maze.NewPositionProblem(l, maze.WithGoal(goal), maze.WithCostFunc(maze.StayWestCost))
	require.NoError(t, err)
	res, err = search.UCS[maze.Position, maze.Direction](west)
	require.NoError(t, err)
	assert.Equal(t, []maze.Direction{s, s, e, e}, res.Actions)
	assert.Equal(t, 16.0, res.Cost)
}

func TestSearch_WalledOffGoal(t *testing.T) {
	pp := mustProblem(t, "%%%%%\n%P%.%\n%%%%%\n")
	for _, st := range search.Strategies() {
		res, err := search.Run[maze.Position, maze.Direction](st, pp, maze.ManhattanHeuristic)
		require.NoError(t, err, st.String())
		assert.False(t, res.Found, st.String())
	}
}

func TestSearch_StartOnGoal(t *testing.T) {
	pp := mustProblem(t, openMaze, maze.WithStart(maze.Position{X: 3, Y: 1}))
	for _, st := range search.Strategies() {
		res, err := search.Run[maze.Position, maze.Direction](st, pp, maze.ManhattanHeuristic)
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.Empty(t, res.Actions)
	}
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "North", maze.North.String())
	assert.Equal(t, "Stop", maze.Stop.String())
	assert.Equal(t, "Direction(42)", maze.Direction(42).String())
	assert.Equal(t, "(1,2)", maze.Position{X: 1, Y: 2}.String())
}
