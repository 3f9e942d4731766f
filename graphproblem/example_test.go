package graphproblem_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/graphproblem"
	"github.com/katalvlaran/lvsearch/search"
)

// ExampleLoad searches a YAML-described graph with A* and its heuristic table.
func ExampleLoad() {
	doc := `
start: S
goals: [G]
edges:
  - {from: S, to: A, cost: 1}
  - {from: S, to: B, cost: 4}
  - {from: A, to: B, cost: 2}
  - {from: A, to: G, cost: 12}
  - {from: B, to: G, cost: 5}
heuristic: {S: 7, A: 6, B: 5}
`
	g, err := graphproblem.Load(strings.NewReader(doc))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := search.AStar[string, string](g, g.Heuristic())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	states, _ := g.Trace(res.Actions)
	fmt.Println(strings.Join(states, " -> "), res.Cost)
	// Output:
	// S -> A -> B -> G 8
}
