package graphproblem

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Document returns the YAML form of g. Edges are grouped by source state in
// the order sources were first seen, so Load(Encode(g)) offers successors in
// the same order as g.
func (g *Graph) Document() Document {
	doc := Document{Start: g.start, Goals: g.Goals()}
	for _, from := range g.order {
		for _, s := range g.adj[from] {
			cost := s.Cost
			doc.Edges = append(doc.Edges, EdgeSpec{From: from, To: s.State, Action: s.Action, Cost: &cost})
		}
	}
	if len(g.h) > 0 {
		doc.Heuristic = make(map[string]float64, len(g.h))
		for k, v := range g.h {
			doc.Heuristic[k] = v
		}
	}

	return doc
}

// Encode writes g to w as a YAML document.
func (g *Graph) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g.Document()); err != nil {
		return fmt.Errorf("graphproblem: encoding document: %w", err)
	}

	return enc.Close()
}
