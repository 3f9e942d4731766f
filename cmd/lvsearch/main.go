// Command lvsearch solves maze layouts and YAML graph problems with the
// search strategies of the lvsearch module.
//
//	lvsearch solve layouts/tinyMaze.lay --strategy bfs
//	lvsearch solve graph.yaml --strategy astar --heuristic table --metrics-out search.prom
//	lvsearch generate grid --rows 8 --cols 8 --max-cost 9 -o grid.yaml
//	lvsearch strategies
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
