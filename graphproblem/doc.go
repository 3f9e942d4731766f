// Package graphproblem provides an explicit weighted digraph as a search
// problem over string states and string actions.
//
// A Graph is built either programmatically (New + AddEdge) or from a YAML
// document:
//
//	start: A
//	goals: [G]
//	edges:
//	  - {from: A, to: B, cost: 1}
//	  - {from: B, to: G, action: "B->G", cost: 2}
//	heuristic:
//	  A: 3
//	  B: 2
//
// Successors are returned in edge insertion order, so uninformed searches over
// a Graph are deterministic. An omitted action defaults to "from->to" and an
// omitted cost defaults to 1.
//
// A Graph is read-only once built; concurrent searches over it are safe as long
// as no AddEdge call runs at the same time.
package graphproblem
