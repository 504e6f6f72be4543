// Package dfs provides depth-first traversal utilities on core.WeightedGraph:
// a hookable DFS, connected components and undirected cycle detection.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned if the input graph is nil.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound is returned if the start key does not exist
	// (ignored when FullTraversal is set).
	ErrStartNodeNotFound = errors.New("dfs: start node not found")
)

// Option configures DFS behavior.
type Option func(*DFSOptions)

// DFSOptions holds parameters and hooks for one traversal.
type DFSOptions struct {
	// Ctx allows cancellation; checked at every node entry.
	Ctx context.Context

	// OnVisit is called on entry to a node (pre-order). An error aborts the walk.
	OnVisit func(key int) error

	// OnExit is called after all descendants of a node are done (post-order).
	OnExit func(key int) error

	// MaxDepth limits recursion depth; -1 means unlimited.
	MaxDepth int

	// FilterNeighbor, if set, must return true for a neighbor to be followed.
	FilterNeighbor func(from, to int) bool

	// FullTraversal restarts the walk from every unvisited node in ascending
	// key order, covering disconnected graphs.
	FullTraversal bool
}

// DefaultOptions returns the defaults: background context, no hooks,
// unlimited depth, single-root walk.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets a cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a pre-order hook.
func WithOnVisit(fn func(key int) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit registers a post-order hook.
func WithOnExit(fn func(key int) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth limits recursion depth; negative means unlimited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) { o.MaxDepth = limit }
}

// WithFilterNeighbor restricts which edges the walk follows.
func WithFilterNeighbor(fn func(from, to int) bool) Option {
	return func(o *DFSOptions) { o.FilterNeighbor = fn }
}

// WithFullTraversal walks every component, not only the one of start.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult collects the outcome of a traversal.
type DFSResult struct {
	// PreOrder lists nodes in entry order.
	PreOrder []int

	// Order lists nodes in post-order (finish order).
	Order []int

	// Depth maps each visited node to its depth in the DFS forest.
	Depth map[int]int

	// Parent maps each visited non-root node to its DFS parent.
	Parent map[int]int

	// Visited marks every node the walk entered.
	Visited map[int]bool

	// Roots lists the node each tree of the forest started from.
	Roots []int

	// SkippedNeighbors counts edges rejected by FilterNeighbor.
	SkippedNeighbors int
}
