// Package fringe provides the three ordered containers that hold the frontier
// of a graph search: a LIFO Stack, a FIFO Queue, and a min-first PriorityQueue.
//
// What:
//
//   - Stack[T]:         Push appends, Pop returns the most recently pushed item.
//   - Queue[T]:         Push appends, Pop returns the earliest pushed item.
//   - PriorityQueue[T]: Push takes a float64 priority, Pop returns the item with
//     the smallest priority. Equal priorities pop in insertion order.
//
// Why:
//
//   - Depth-first search explores deep first from a Stack.
//   - Breadth-first search expands shallowest first from a Queue.
//   - Uniform-cost and A* search expand the cheapest known entry from a PriorityQueue.
//
// Complexity:
//
//   - Stack:         Push/Pop O(1) amortized.
//   - Queue:         Push/Pop O(1) amortized (head index with periodic compaction).
//   - PriorityQueue: Push/Pop O(log N) over container/heap.
//
// Errors:
//
//   - ErrEmptyContainer: Pop or Peek on an empty container. This is a programming
//     error; the call panics with an error wrapping ErrEmptyContainer. Search loops
//     always check IsEmpty first.
//
// None of the containers are safe for concurrent use. A search call owns its
// frontier for the duration of the call.
package fringe
