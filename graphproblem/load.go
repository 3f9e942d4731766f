package graphproblem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a Graph.
type Document struct {
	Start     string             `yaml:"start"`
	Goals     []string           `yaml:"goals"`
	Edges     []EdgeSpec         `yaml:"edges"`
	Heuristic map[string]float64 `yaml:"heuristic,omitempty"`
}

// EdgeSpec is one edge of a Document. A nil Cost means 1.
type EdgeSpec struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Action string   `yaml:"action,omitempty"`
	Cost   *float64 `yaml:"cost,omitempty"`
}

// Load decodes a YAML document from r and builds the Graph it describes.
// Unknown fields are rejected.
func Load(r io.Reader) (*Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoStart
		}

		return nil, fmt.Errorf("graphproblem: decoding document: %w", err)
	}

	return doc.Build()
}

// LoadFile reads and decodes the YAML document at path.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphproblem: opening %s: %w", path, err)
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Build validates the document and constructs its Graph.
func (d Document) Build() (*Graph, error) {
	g, err := New(d.Start, d.Goals...)
	if err != nil {
		return nil, err
	}
	for i, e := range d.Edges {
		cost := 1.0
		if e.Cost != nil {
			cost = *e.Cost
		}
		if err := g.AddEdge(e.From, e.To, e.Action, cost); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	// Sorted so the first reported unknown state is stable.
	names := make([]string, 0, len(d.Heuristic))
	for s := range d.Heuristic {
		names = append(names, s)
	}
	sort.Strings(names)
	for _, s := range names {
		if err := g.SetHeuristic(s, d.Heuristic[s]); err != nil {
			return nil, err
		}
	}

	return g, nil
}
