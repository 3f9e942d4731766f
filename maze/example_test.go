package maze_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/maze"
	"github.com/katalvlaran/lvsearch/search"
)

// ExampleNewPositionProblem solves a small maze with A* and the Manhattan
// heuristic, then replays the plan over the layout.
func ExampleNewPositionProblem() {
	l, err := maze.ParseString(`%%%%%%%
%    P%
% %%% %
%  %  %
%%   %%
%. %%%%
%%%%%%%
`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	pp, err := maze.NewPositionProblem(l)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := search.AStar[maze.Position, maze.Direction](pp, maze.ManhattanHeuristic)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	cells, _ := l.Trace(res.Actions)
	fmt.Println(res.Actions)
	fmt.Println("cost:", res.Cost, "expanded:", res.Expanded)
	fmt.Println(cells[0], "->", cells[len(cells)-1])
	// Output:
	// [South South West South West West South West]
	// cost: 8 expanded: 14
	// (5,5) -> (1,1)
}
