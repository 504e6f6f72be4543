// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– WithReturnPath:  keep the predecessor map for path reconstruction.
//	– WithMaxDistance: optional cap on distances to explore; nodes beyond it stay unreached.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrNodeNotFound    if the source node does not exist in the graph.
//	– ErrNegativeWeight  if a negative (or NaN) edge weight is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0 or NaN.
//	– ErrUnreachable     if a path or distance is requested for a node that was not reached.
//	– ErrNoPathRecorded  if PathTo is called on a Result computed without WithReturnPath.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that the specified source node does not exist
	// in the provided graph.
	ErrNodeNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrUnreachable indicates that the requested node was not reached from the source.
	ErrUnreachable = errors.New("dijkstra: node unreachable from source")

	// ErrNoPathRecorded indicates that predecessors were not kept for this Result.
	ErrNoPathRecorded = errors.New("dijkstra: predecessor map not recorded")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath  – if true, keep the predecessor map; otherwise Result.Prev is nil.
// MaxDistance – optional cap on distances to explore (nodes beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	ReturnPath  bool    // Whether to keep the predecessor map
	MaxDistance float64 // Maximum distance to explore

	err error // recorded by invalid options, surfaced by Dijkstra
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables recording of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// A negative or NaN value makes Dijkstra return ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: got %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - ReturnPath:  false (predecessor map not kept).
//   - MaxDistance: +Inf (no distance limit; explore all reachable).
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}

// Result holds the outcome of one Dijkstra run.
//
// Dist has an entry for every node of the graph: the shortest distance from
// Source, or +Inf when the node was not reached. Prev maps every reached node
// other than Source to its predecessor on a shortest path; it is nil unless
// WithReturnPath was given.
type Result struct {
	Source int
	Dist   map[int]float64
	Prev   map[int]int
}

// Distance returns the shortest distance from Source to key.
// The bool is false when key is unknown or was not reached.
func (r *Result) Distance(key int) (float64, bool) {
	d, ok := r.Dist[key]
	if !ok || math.IsInf(d, 1) {
		return 0, false
	}

	return d, true
}

// PathTo reconstructs the node sequence Source → … → dest.
//
// Reachability is checked before walking predecessors, so an unreached dest
// yields ErrUnreachable instead of a dangling lookup.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Distance(dest); !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, dest)
	}
	if r.Prev == nil {
		return nil, ErrNoPathRecorded
	}

	// walk predecessors back to the source
	path := []int{dest}
	for cur := dest; cur != r.Source; {
		prev, ok := r.Prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: broken predecessor chain at %d", ErrUnreachable, cur)
		}
		path = append(path, prev)
		if len(path) > len(r.Dist) {
			return nil, fmt.Errorf("%w: predecessor cycle through %d", ErrUnreachable, prev)
		}
		cur = prev
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
