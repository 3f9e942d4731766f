package search_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/internal/logging"
	"github.com/katalvlaran/lvsearch/search"
)

func TestCounters_Diamond(t *testing.T) {
	// BFS never queues a discovered state twice; DFS, UCS and A* push D once
	// per parent, and UCS/A* also expand C before popping the cheap D.
	cases := []struct {
		name      string
		expanded  int
		generated int
	}{
		{"dfs", 2, 3},
		{"bfs", 3, 3},
		{"ucs", 3, 4},
		{"astar", 3, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := solverByName(tc.name)(diamond())
			require.NoError(t, err)
			require.True(t, res.Found)
			assert.Equal(t, tc.expanded, res.Expanded)
			assert.Equal(t, tc.generated, res.Generated)
		})
	}
}

func TestLogger_DebugRecords(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewWriter(&buf, slog.LevelDebug)

	_, err := search.BFS[string, string](diamond(), search.WithLogger(log))
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `msg="search started" strategy=bfs`)
	assert.Contains(t, out, `msg="goal reached" strategy=bfs depth=2 cost=2 expanded=3`)

	buf.Reset()
	_, err = search.UCS[string, string](newGraph("A", "Z").add("A", "B", 1), search.WithLogger(log))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `msg="frontier exhausted" strategy=ucs expanded=2`)

	buf.Reset()
	_, err = search.DFS[string, string](diamond(), search.WithLogger(log), search.WithMaxExpansions(1))
	require.ErrorIs(t, err, search.ErrExpansionLimit)
	assert.Contains(t, buf.String(), `msg="search aborted" strategy=dfs err=`)
}

func TestLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	_, err := search.AStar[string, string](diamond(), nil,
		search.WithLogger(logging.NewWriter(&buf, slog.LevelInfo)))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
