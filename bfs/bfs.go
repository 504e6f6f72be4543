// Package bfs provides breadth-first search over a core.WeightedGraph,
// returning hop distances, parent links, and visit order.
//
// BFS explores nodes in increasing hop distance from a start node,
// with an optional visit hook, depth limiting and cancellation.
// Edge weights are ignored.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a node key with its BFS depth.
type queueItem struct {
	key   int
	depth int
}

// walker encapsulates mutable BFS state. The visited set lives here, never
// on the graph, so concurrent traversals of one graph do not interfere.
type walker struct {
	graph   core.WeightedGraph
	opts    Options
	queue   []queueItem
	head    int
	visited map[int]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or any user-supplied hook error.
//
// Neighbors are enqueued in ascending key order, so the visit sequence
// is reproducible for a fixed graph.
func BFS(g core.WeightedGraph, start int, opts ...Option) (*Result, error) {
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
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	// Seed queue with start node (no parent)
	w.visited[start] = true
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{key: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++

		w.res.Order = append(w.res.Order, item.key)
		if err := w.opts.OnVisit(item.key, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.key, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.NeighborKeys(item.key)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, item.key, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] {
			continue
		}
		w.visited[nbr] = true
		w.res.Depth[nbr] = next
		w.res.Parent[nbr] = item.key
		w.queue = append(w.queue, queueItem{key: nbr, depth: next})
	}

	return nil
}
