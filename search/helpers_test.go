package search_test

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvsearch/problem"
)

// arc is one labelled, weighted edge of testGraph.
type arc struct {
	to     string
	action string
	cost   float64
}

// testGraph is a small explicit directed graph problem used across tests.
// Successors are returned in insertion order; actions are labelled "from->to".
type testGraph struct {
	start string
	goals map[string]bool
	adj   map[string][]arc
}

func newGraph(start string, goals ...string) *testGraph {
	g := &testGraph{start: start, goals: map[string]bool{}, adj: map[string][]arc{}}
	for _, s := range goals {
		g.goals[s] = true
	}

	return g
}

// add inserts a directed edge from→to with the given cost.
func (g *testGraph) add(from, to string, cost float64) *testGraph {
	g.adj[from] = append(g.adj[from], arc{to: to, action: from + "->" + to, cost: cost})

	return g
}

// both inserts from→to and to→from.
func (g *testGraph) both(a, b string, cost float64) *testGraph {
	return g.add(a, b, cost).add(b, a, cost)
}

func (g *testGraph) StartState() string       { return g.start }
func (g *testGraph) IsGoal(state string) bool { return g.goals[state] }

func (g *testGraph) Successors(state string) []problem.Successor[string, string] {
	out := make([]problem.Successor[string, string], 0, len(g.adj[state]))
	for _, a := range g.adj[state] {
		out = append(out, problem.Successor[string, string]{State: a.to, Action: a.action, Cost: a.cost})
	}

	return out
}

func (g *testGraph) CostOfActions(actions []string) (float64, error) {
	cur, total := g.start, 0.0
	for _, act := range actions {
		found := false
		for _, a := range g.adj[cur] {
			if a.action == act {
				cur, total, found = a.to, total+a.cost, true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("testGraph: illegal action %q at %q", act, cur)
		}
	}

	return total, nil
}

// endState replays actions and returns the state reached.
func (g *testGraph) endState(actions []string) string {
	cur := g.start
	for _, act := range actions {
		for _, a := range g.adj[cur] {
			if a.action == act {
				cur = a.to
				break
			}
		}
	}

	return cur
}

// vertices returns every state mentioned in g.
func (g *testGraph) vertices() []string {
	seen := map[string]bool{g.start: true}
	out := []string{g.start}
	for from, arcs := range g.adj {
		if !seen[from] {
			seen[from] = true
			out = append(out, from)
		}
		for _, a := range arcs {
			if !seen[a.to] {
				seen[a.to] = true
				out = append(out, a.to)
			}
		}
	}

	return out
}

// distances computes the cheapest cost from the start to every state by
// Bellman-Ford relaxation. With unit set it counts edges instead.
func (g *testGraph) distances(unit bool) map[string]float64 {
	verts := g.vertices()
	dist := make(map[string]float64, len(verts))
	for _, v := range verts {
		dist[v] = math.Inf(1)
	}
	dist[g.start] = 0
	for i := 0; i < len(verts); i++ {
		for from, arcs := range g.adj {
			for _, a := range arcs {
				w := a.cost
				if unit {
					w = 1
				}
				if dist[from]+w < dist[a.to] {
					dist[a.to] = dist[from] + w
				}
			}
		}
	}

	return dist
}

// optimum returns the cheapest distance from the start to any goal.
func (g *testGraph) optimum(unit bool) float64 {
	dist := g.distances(unit)
	best := math.Inf(1)
	for s := range g.goals {
		if d, ok := dist[s]; ok && d < best {
			best = d
		}
	}

	return best
}

// remaining computes the exact cheapest cost from every state to a goal.
func (g *testGraph) remaining() map[string]float64 {
	verts := g.vertices()
	rem := make(map[string]float64, len(verts))
	for _, v := range verts {
		rem[v] = math.Inf(1)
		if g.goals[v] {
			rem[v] = 0
		}
	}
	for i := 0; i < len(verts); i++ {
		for from, arcs := range g.adj {
			for _, a := range arcs {
				if rem[a.to]+a.cost < rem[from] {
					rem[from] = rem[a.to] + a.cost
				}
			}
		}
	}

	return rem
}

// randomGraph builds a directed graph on n states "s0".."s{n-1}" with integer
// costs in [0,9], start "s0" and one or two goals.
func randomGraph(rng *rand.Rand, n int, density float64) *testGraph {
	g := newGraph("s0", fmt.Sprintf("s%d", n-1))
	if rng.Intn(2) == 0 {
		g.goals[fmt.Sprintf("s%d", rng.Intn(n))] = true
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && rng.Float64() < density {
				g.add(fmt.Sprintf("s%d", i), fmt.Sprintf("s%d", j), float64(rng.Intn(10)))
			}
		}
	}

	return g
}

// diamond is the A→B→D / A→C→D scenario: the B branch costs 2, the C branch 6.
func diamond() *testGraph {
	return newGraph("A", "D").
		add("A", "B", 1).
		add("A", "C", 1).
		add("B", "D", 1).
		add("C", "D", 5)
}
