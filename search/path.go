package search

import "fmt"

// node is a frontier entry: a state plus enough to link it to its predecessor.
// It never carries the full path.
type node[S comparable, A any] struct {
	state  S
	parent S
	action A
	root   bool // true only for the start entry
	cost   float64
	depth  int
}

// rootNode builds the frontier entry of the start state.
func rootNode[S comparable, A any](start S) node[S, A] {
	return node[S, A]{state: start, root: true}
}

// child builds the entry reached from n through action at step cost c.
func (n node[S, A]) child(state S, action A, c float64) node[S, A] {
	return node[S, A]{
		state:  state,
		parent: n.state,
		action: action,
		cost:   n.cost + c,
		depth:  n.depth + 1,
	}
}

// link is a parent-map value: how a state was reached.
type link[S comparable, A any] struct {
	parent S
	action A
	root   bool
}

// parents maps each linked state to its (predecessor, action) pair.
// The start state is stored with root == true and ends every walk.
type parents[S comparable, A any] map[S]link[S, A]

// record stores the link of n unless the state already has one.
// It reports whether the link was stored.
func (pm parents[S, A]) record(n node[S, A]) bool {
	if _, ok := pm[n.state]; ok {
		return false
	}
	pm[n.state] = link[S, A]{parent: n.parent, action: n.action, root: n.root}

	return true
}

// path walks parent links from goal back to the root and returns the actions
// in start-to-goal order. O(depth).
//
// A missing link or a walk longer than the map is an internal bug; it panics.
func (pm parents[S, A]) path(goal S) []A {
	var actions []A
	cur := goal
	for steps := 0; ; steps++ {
		if steps > len(pm) {
			panic(fmt.Sprintf("search: parent chain from %v does not reach the start", goal))
		}
		l, ok := pm[cur]
		if !ok {
			panic(fmt.Sprintf("search: no parent link for %v", cur))
		}
		if l.root {
			break
		}
		actions = append(actions, l.action)
		cur = l.parent
	}
	// reverse to get start → goal
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}
	if actions == nil {
		actions = []A{}
	}

	return actions
}
