package fringe

// Stack is a last-in, first-out container.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty Stack with room for capacity items.
func NewStack[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push places item on top of the stack.
// Complexity: O(1) amortized.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the most recently pushed item.
// Panics with ErrEmptyContainer if the stack is empty.
// Complexity: O(1).
func (s *Stack[T]) Pop() T {
	n := len(s.items)
	if n == 0 {
		emptyPanic("stack", "Pop")
	}
	item := s.items[n-1]
	var zero T
	s.items[n-1] = zero // release reference for GC
	s.items = s.items[:n-1]

	return item
}

// Peek returns the top item without removing it.
// Panics with ErrEmptyContainer if the stack is empty.
func (s *Stack[T]) Peek() T {
	if len(s.items) == 0 {
		emptyPanic("stack", "Peek")
	}

	return s.items[len(s.items)-1]
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }
