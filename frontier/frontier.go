// SPDX-License-Identifier: MIT
// Package frontier implements the decrease-key-capable minimum-priority
// structure shared by the shortest-path and spanning-tree engines.
//
// A Frontier holds vertices keyed by a mutable float64 priority. It is an
// indexed binary heap: alongside the heap slice, pos[v] records where vertex v
// currently sits, so DecreaseKey can sift v up in O(log n) without a search.
//
// Ordering:
//
//	– lower priority first;
//	– equal priorities are broken by vertex ID ascending, so extraction order
//	  is a pure function of the inserted (vertex, priority) pairs.
//
// Complexity:
//
//	Insert       O(log n)
//	ExtractMin   O(log n)
//	DecreaseKey  O(log n)
//	Contains     O(1)
//	Priority     O(1)
//
// A Frontier is not safe for concurrent use; every query owns its own.
package frontier

import (
	"container/heap"
	"errors"
	"fmt"
)

// Sentinel errors returned by Frontier operations.
var (
	// ErrEmptyFrontier indicates ExtractMin or Peek on an empty frontier.
	// For the engines in this module it signals a broken loop invariant.
	ErrEmptyFrontier = errors.New("frontier: empty")

	// ErrInvalidVertex indicates a negative vertex ID, or DecreaseKey/Priority
	// on a vertex that is not in the frontier.
	ErrInvalidVertex = errors.New("frontier: invalid vertex")

	// ErrDuplicateVertex indicates Insert of a vertex that is already present.
	ErrDuplicateVertex = errors.New("frontier: vertex already present")
)

// absent marks a vertex that is not in the heap.
const absent = -1

// entry is one heap slot.
type entry struct {
	vertex   int
	priority float64
}

// Frontier is an indexed min-heap of vertices.
type Frontier struct {
	items entries
}

// entries implements heap.Interface and keeps pos in sync on every swap.
type entries struct {
	heap []entry
	pos  []int // pos[v] = index of v in heap, or absent
}

// Len returns the number of vertices in the heap.
func (e *entries) Len() int { return len(e.heap) }

// Less orders by priority, then by vertex ID.
func (e *entries) Less(i, j int) bool {
	a, b := e.heap[i], e.heap[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}

	return a.vertex < b.vertex
}

// Swap exchanges two slots and their position records.
func (e *entries) Swap(i, j int) {
	e.heap[i], e.heap[j] = e.heap[j], e.heap[i]
	e.pos[e.heap[i].vertex] = i
	e.pos[e.heap[j].vertex] = j
}

// Push appends x; called by heap.Push.
func (e *entries) Push(x any) {
	it := x.(entry)
	e.pos[it.vertex] = len(e.heap)
	e.heap = append(e.heap, it)
}

// Pop removes the last slot; called by heap.Pop.
func (e *entries) Pop() any {
	old := e.heap
	n := len(old)
	it := old[n-1]
	e.heap = old[:n-1]
	e.pos[it.vertex] = absent

	return it
}

// New returns an empty Frontier. capacity is a sizing hint, usually the
// vertex count of the graph being searched.
func New(capacity int) *Frontier {
	if capacity < 0 {
		capacity = 0
	}
	f := &Frontier{items: entries{
		heap: make([]entry, 0, capacity),
		pos:  make([]int, capacity),
	}}
	for i := range f.items.pos {
		f.items.pos[i] = absent
	}

	return f
}

// grow extends the position index to cover v.
func (f *Frontier) grow(v int) {
	for len(f.items.pos) <= v {
		f.items.pos = append(f.items.pos, absent)
	}
}

// Len returns the number of vertices currently in the frontier.
func (f *Frontier) Len() int { return f.items.Len() }

// Contains reports whether v is currently in the frontier.
func (f *Frontier) Contains(v int) bool {
	return v >= 0 && v < len(f.items.pos) && f.items.pos[v] != absent
}

// Insert adds v with priority p.
//
// Errors:
//   - ErrInvalidVertex: v < 0.
//   - ErrDuplicateVertex: v is already present (use DecreaseKey instead).
func (f *Frontier) Insert(v int, p float64) error {
	if v < 0 {
		return fmt.Errorf("Insert(%d): %w", v, ErrInvalidVertex)
	}
	f.grow(v)
	if f.items.pos[v] != absent {
		return fmt.Errorf("Insert(%d): %w", v, ErrDuplicateVertex)
	}
	heap.Push(&f.items, entry{vertex: v, priority: p})

	return nil
}

// ExtractMin removes and returns the vertex of lowest priority
// (lowest vertex ID among equal priorities).
//
// Errors:
//   - ErrEmptyFrontier: nothing left to extract.
func (f *Frontier) ExtractMin() (int, float64, error) {
	if f.items.Len() == 0 {
		return 0, 0, ErrEmptyFrontier
	}
	it := heap.Pop(&f.items).(entry)

	return it.vertex, it.priority, nil
}

// Peek returns the minimum without removing it.
func (f *Frontier) Peek() (int, float64, error) {
	if f.items.Len() == 0 {
		return 0, 0, ErrEmptyFrontier
	}
	it := f.items.heap[0]

	return it.vertex, it.priority, nil
}

// Priority returns the current priority of v.
func (f *Frontier) Priority(v int) (float64, error) {
	if !f.Contains(v) {
		return 0, fmt.Errorf("Priority(%d): %w", v, ErrInvalidVertex)
	}

	return f.items.heap[f.items.pos[v]].priority, nil
}

// DecreaseKey lowers the priority of v to p.
//
// It is a no-op (false, nil) unless p is strictly lower than the current
// priority. It reports true when the priority changed.
//
// Errors:
//   - ErrInvalidVertex: v is not in the frontier.
func (f *Frontier) DecreaseKey(v int, p float64) (bool, error) {
	if !f.Contains(v) {
		return false, fmt.Errorf("DecreaseKey(%d): %w", v, ErrInvalidVertex)
	}
	i := f.items.pos[v]
	if !(p < f.items.heap[i].priority) {
		return false, nil
	}
	f.items.heap[i].priority = p
	heap.Fix(&f.items, i)

	return true, nil
}
