package fringe

// compactThreshold is the minimum number of consumed slots before the queue
// considers sliding its live items back to the start of the buffer.
const compactThreshold = 64

// Queue is a first-in, first-out container.
// The zero value is an empty queue ready to use.
type Queue[T any] struct {
	items []T
	head  int // index of the next item to pop
}

// NewQueue returns an empty Queue with room for capacity items.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[T]{items: make([]T, 0, capacity)}
}

// Push appends item at the back of the queue.
// Complexity: O(1) amortized.
func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Pop removes and returns the earliest pushed item.
// Panics with ErrEmptyContainer if the queue is empty.
// Complexity: O(1) amortized.
func (q *Queue[T]) Pop() T {
	if q.head >= len(q.items) {
		emptyPanic("queue", "Pop")
	}
	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++

	// Reset or compact once the consumed prefix dominates the buffer.
	switch {
	case q.head == len(q.items):
		q.items = q.items[:0]
		q.head = 0
	case q.head >= compactThreshold && q.head*2 >= len(q.items):
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}

	return item
}

// Peek returns the front item without removing it.
// Panics with ErrEmptyContainer if the queue is empty.
func (q *Queue[T]) Peek() T {
	if q.head >= len(q.items) {
		emptyPanic("queue", "Peek")
	}

	return q.items[q.head]
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return q.Len() == 0 }
