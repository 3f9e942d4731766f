// SPDX-License-Identifier: MIT
// Package: lvsearch/graphproblem
//
// generate.go - deterministic Grid and RandomSparse problem generators.
//
// Determinism:
//   - Vertices are named in ascending index order.
//   - Edge trials run in a fixed order, so a fixed seed yields a fixed graph.

package graphproblem

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for the generators.
var (
	// ErrTooFewVertices indicates a size parameter (n, rows, cols) below its minimum.
	ErrTooFewVertices = errors.New("graphproblem: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("graphproblem: probability out of range")

	// ErrNeedRandSource indicates a stochastic generator ran without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("graphproblem: rng is required")
)

// WeightFn produces an edge cost. It must be deterministic for a given RNG
// state and never return a negative value.
type WeightFn func(rng *rand.Rand) float64

// UnitWeight costs every edge 1.
func UnitWeight(_ *rand.Rand) float64 { return 1 }

// UniformWeight draws costs uniformly from [lo, hi). It panics if lo < 0 or
// hi < lo. With a nil rng it returns lo.
func UniformWeight(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("graphproblem: UniformWeight(%g, %g): need 0 <= lo <= hi", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// GenOption customizes a generator.
type GenOption func(*genConfig)

type genConfig struct {
	rng    *rand.Rand
	weight WeightFn
	idFn   func(int) string
}

// WithSeed seeds a private RNG for reproducible generation.
func WithSeed(seed int64) GenOption {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the RNG directly. Panics on nil.
func WithRand(r *rand.Rand) GenOption {
	if r == nil {
		panic("graphproblem: WithRand(nil)")
	}

	return func(c *genConfig) { c.rng = r }
}

// WithWeightFn sets the edge cost generator. Panics on nil.
func WithWeightFn(fn WeightFn) GenOption {
	if fn == nil {
		panic("graphproblem: WithWeightFn(nil)")
	}

	return func(c *genConfig) { c.weight = fn }
}

// WithIDScheme sets the vertex naming function used by RandomSparse. Panics on nil.
func WithIDScheme(fn func(int) string) GenOption {
	if fn == nil {
		panic("graphproblem: WithIDScheme(nil)")
	}

	return func(c *genConfig) { c.idFn = fn }
}

func newGenConfig(opts []GenOption) genConfig {
	c := genConfig{weight: UnitWeight, idFn: ColumnID}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// ColumnID names idx the way spreadsheet columns are named: 0→"A", 25→"Z",
// 26→"AA". Panics if idx < 0.
func ColumnID(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("graphproblem: ColumnID(%d)", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// Grid builds a rows×cols 4-connected grid with IDs "r,c". Every adjacency is
// added in both directions; each direction draws its own cost. The start is
// "0,0" and the goal the opposite corner.
// Successors are emitted per cell in up, down, left, right order.
func Grid(rows, cols int, opts ...GenOption) (*Graph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Grid: rows=%d, cols=%d (each must be >= 1): %w", rows, cols, ErrTooFewVertices)
	}
	cfg := newGenConfig(opts)
	id := func(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }

	g, err := New(id(0, 0), id(rows-1, cols-1))
	if err != nil {
		return nil, err
	}
	steps := [...][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			for _, d := range steps {
				nr, nc := r+d[0], c+d[1]
				if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
					continue
				}
				if err := g.AddEdge(id(r, c), id(nr, nc), "", cfg.weight(cfg.rng)); err != nil {
					return nil, fmt.Errorf("Grid: %w", err)
				}
			}
		}
	}

	return g, nil
}

// RandomSparse samples a directed graph over n vertices: each ordered pair
// (i, j), i != j, becomes an edge with probability p. Trials run in i-major
// order, so a fixed seed gives a fixed graph. The start is vertex 0 and the
// goal vertex n-1. p in (0, 1) requires WithSeed or WithRand.
func RandomSparse(n int, p float64, opts ...GenOption) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomSparse: n=%d < 1: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
	}
	cfg := newGenConfig(opts)
	if cfg.rng == nil && p > 0 && p < 1 {
		return nil, fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
	}

	g, err := New(cfg.idFn(0), cfg.idFn(n-1))
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		g.states[cfg.idFn(i)] = struct{}{}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			take := p == 1
			if cfg.rng != nil && p > 0 && p < 1 {
				take = cfg.rng.Float64() < p
			}
			if !take {
				continue
			}
			if err := g.AddEdge(cfg.idFn(i), cfg.idFn(j), "", cfg.weight(cfg.rng)); err != nil {
				return nil, fmt.Errorf("RandomSparse: %w", err)
			}
		}
	}

	return g, nil
}
