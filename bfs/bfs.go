// SPDX-License-Identifier: MIT
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or a wrapped core.ErrInvalidVertex for invalid input,
// ErrOptionViolation for bad options, the context's error on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("bfs: start %d: %w", start, core.ErrInvalidVertex)
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = unreached
		w.res.Parent[v] = core.NoVertex
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, core.NoVertex)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks v reached at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.dequeue()
		if err := w.visit(v); err != nil {
			return err
		}
		w.enqueueNeighbors(v)
	}
	// a cancel during the last expansion leaves the queue empty
	return w.ctx.Err()
}

// dequeue pops the first vertex, invokes OnDequeue, and returns it.
func (w *walker) dequeue() int {
	v := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(v, w.res.Depth[v])
	return v
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(v int) error {
	w.res.Order = append(w.res.Order, v)
	if err := w.opts.OnVisit(v, w.res.Depth[v]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(v int) {
	seq, err := w.graph.Neighbors(v)
	if err != nil {
		// v came from the queue, so it is a valid vertex
		panic(err)
	}
	next := w.res.Depth[v] + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for nbr, wt := range seq {
		// stop expanding once cancelled; loop() reports the error
		if w.ctx.Err() != nil {
			return
		}
		if w.res.Depth[nbr] != unreached {
			continue
		}
		if !w.opts.FilterNeighbor(v, nbr, wt) {
			continue
		}
		w.enqueue(nbr, next, v)
	}
}
