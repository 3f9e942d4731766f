package fringe

import "container/heap"

// PriorityQueue pops the item with the smallest priority first.
// Items pushed with equal priority pop in the order they were pushed.
//
// It uses the lazy strategy: an item pushed twice is stored twice, and callers
// skip stale entries when they pop them.
type PriorityQueue[T any] struct {
	h   entryHeap[T]
	seq uint64 // insertion counter used as the tie-breaker
}

// NewPriorityQueue returns an empty PriorityQueue with room for capacity items.
func NewPriorityQueue[T any](capacity int) *PriorityQueue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &PriorityQueue[T]{h: make(entryHeap[T], 0, capacity)}
}

// Push inserts item with the given priority.
// Complexity: O(log N).
func (pq *PriorityQueue[T]) Push(item T, priority float64) {
	heap.Push(&pq.h, entry[T]{item: item, priority: priority, seq: pq.seq})
	pq.seq++
}

// Pop removes and returns the item with the smallest priority.
// Panics with ErrEmptyContainer if the queue is empty.
// Complexity: O(log N).
func (pq *PriorityQueue[T]) Pop() T {
	item, _ := pq.PopWithPriority()

	return item
}

// PopWithPriority is Pop that also returns the priority the item was pushed with.
func (pq *PriorityQueue[T]) PopWithPriority() (T, float64) {
	if len(pq.h) == 0 {
		emptyPanic("priority queue", "Pop")
	}
	e := heap.Pop(&pq.h).(entry[T])

	return e.item, e.priority
}

// Peek returns the smallest-priority item and its priority without removing it.
// Panics with ErrEmptyContainer if the queue is empty.
func (pq *PriorityQueue[T]) Peek() (T, float64) {
	if len(pq.h) == 0 {
		emptyPanic("priority queue", "Peek")
	}

	return pq.h[0].item, pq.h[0].priority
}

// Len returns the number of stored entries, stale duplicates included.
func (pq *PriorityQueue[T]) Len() int { return len(pq.h) }

// IsEmpty reports whether the queue holds no entries.
func (pq *PriorityQueue[T]) IsEmpty() bool { return len(pq.h) == 0 }

// entry pairs an item with its priority and insertion sequence number.
type entry[T any] struct {
	item     T
	priority float64
	seq      uint64
}

// entryHeap is a min-heap ordered by (priority, seq).
type entryHeap[T any] []entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = entry[T]{}
	*h = old[:n-1]

	return e
}
