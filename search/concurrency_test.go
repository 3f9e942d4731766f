package search_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/search"
)

// TestConcurrentSearches_SharedProblem runs every strategy from many goroutines
// over one read-only problem and compares each result with a sequential run.
// Run with -race.
func TestConcurrentSearches_SharedProblem(t *testing.T) {
	const workers = 16
	g := gridGraph(15)

	want := make(map[string]search.Result[string], len(allSolvers))
	for _, s := range allSolvers {
		res, err := s.run(g)
		require.NoError(t, err, s.name)
		require.True(t, res.Found, s.name)
		want[s.name] = res
	}

	type outcome struct {
		name string
		res  search.Result[string]
		err  error
	}
	results := make([]outcome, workers*len(allSolvers))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		for i, s := range allSolvers {
			wg.Add(1)
			go func(slot int, s namedSolver) {
				defer wg.Done()
				res, err := s.run(g)
				results[slot] = outcome{name: s.name, res: res, err: err}
			}(w*len(allSolvers)+i, s)
		}
	}
	wg.Wait()

	for _, o := range results {
		require.NoError(t, o.err, o.name)
		assert.Equal(t, want[o.name], o.res, o.name)
	}
	assert.Equal(t, 28.0, want["ucs"].Cost)
	assert.Len(t, want["bfs"].Actions, 28)
}
