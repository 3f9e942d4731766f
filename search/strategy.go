package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/problem"
)

// Strategy names one of the four search strategies.
type Strategy string

// Registered strategies.
const (
	StrategyDFS   Strategy = "dfs"
	StrategyBFS   Strategy = "bfs"
	StrategyUCS   Strategy = "ucs"
	StrategyAStar Strategy = "astar"
)

// aliases maps accepted spellings (lower-cased) to a Strategy.
var aliases = map[string]Strategy{
	"dfs":                StrategyDFS,
	"depthfirstsearch":   StrategyDFS,
	"depth-first":        StrategyDFS,
	"bfs":                StrategyBFS,
	"breadthfirstsearch": StrategyBFS,
	"breadth-first":      StrategyBFS,
	"ucs":                StrategyUCS,
	"uniformcostsearch":  StrategyUCS,
	"uniform-cost":       StrategyUCS,
	"astar":              StrategyAStar,
	"astarsearch":        StrategyAStar,
	"a*":                 StrategyAStar,
}

// String returns the short name.
func (s Strategy) String() string { return string(s) }

// Informed reports whether the strategy uses a heuristic.
func (s Strategy) Informed() bool { return s == StrategyAStar }

// ParseStrategy resolves a strategy by short or long name, case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	if s, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Strategies lists the registered strategies by short name, sorted.
func Strategies() []Strategy {
	return []Strategy{StrategyAStar, StrategyBFS, StrategyDFS, StrategyUCS}
}

// Run dispatches to the named strategy. h is used by StrategyAStar only.
func Run[S comparable, A any](s Strategy, p problem.Problem[S, A], h problem.Heuristic[S, A], opts ...Option) (Result[A], error) {
	switch s {
	case StrategyDFS:
		return DFS(p, opts...)
	case StrategyBFS:
		return BFS(p, opts...)
	case StrategyUCS:
		return UCS(p, opts...)
	case StrategyAStar:
		return AStar(p, h, opts...)
	default:
		return Result[A]{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, string(s))
	}
}
