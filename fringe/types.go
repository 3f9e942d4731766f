package fringe

import (
	"errors"
	"fmt"
)

// ErrEmptyContainer is the panic payload (wrapped) of Pop or Peek on an empty container.
var ErrEmptyContainer = errors.New("fringe: empty container")

// Fringe is the ordering contract shared by Stack and Queue.
// Uninformed search runs the same loop over either implementation.
type Fringe[T any] interface {
	Push(item T)
	Pop() T
	Len() int
	IsEmpty() bool
}

// compile-time checks
var (
	_ Fringe[int] = (*Stack[int])(nil)
	_ Fringe[int] = (*Queue[int])(nil)
)

// emptyPanic fails fast with a wrapped ErrEmptyContainer naming the container and operation.
func emptyPanic(container, op string) {
	panic(fmt.Errorf("%w: %s on empty %s", ErrEmptyContainer, op, container))
}
