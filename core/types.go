// Package core defines the central Graph, Node and Edge types of wgraph
// and the thread-safe primitives for building, querying and cloning an
// undirected weighted graph.
//
// A single sync.RWMutex (mu) guards the node catalog, the adjacency maps
// and the counters, so every exported method is safe to call concurrently.
// Traversal algorithms never write to the Graph: they keep their scratch
// state (visited flags, distance estimates) in call-local maps.
//
// This file declares Node, Edge, Graph, GraphOption, the sentinel errors
// and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound     - requested node does not exist.
//	ErrCorruptSnapshot  - a Snapshot violates the graph invariants.
package core

import (
	"errors"
	"sync"
)

// NoEdge is the weight reported by EdgeWeight when the pair is not connected.
const NoEdge float64 = -1

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node key.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrCorruptSnapshot indicates that a Snapshot cannot be turned back into a Graph.
	ErrCorruptSnapshot = errors.New("core: corrupt snapshot")
)

// Node is a vertex of the graph.
//
// Key uniquely identifies the Node within its Graph and never changes.
// Info is a free-form annotation; it takes part in equality, Key alone
// takes part in adjacency.
type Node struct {
	// Key is the caller-assigned identifier.
	Key int `json:"key"`

	// Info is the mutable annotation (empty for freshly added nodes).
	Info string `json:"info,omitempty"`
}

// Edge is an undirected weighted connection between two distinct nodes.
//
// Snapshots and Edges() always report From < To.
type Edge struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Weight float64 `json:"weight"`
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the node catalog and the adjacency table for n nodes.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.nodes = make(map[int]*Node, n)
			g.adj = make(map[int]map[int]float64, n)
		}
	}
}

// Graph is the in-memory undirected weighted graph.
//
// adj[a][b] holds the weight of edge {a,b}; every edge is stored under both
// endpoints, so adj[a][b] == adj[b][a] at all times. Every node owns an
// adjacency bucket, possibly empty.
//
// mc (the modification count) grows by exactly one per structural change:
// node insertion, node removal, edge insertion and edge removal. Callers use
// it to detect that snapshots they hold went stale.
type Graph struct {
	mu sync.RWMutex // guards everything below

	nodes     map[int]*Node           // key → Node
	adj       map[int]map[int]float64 // key → neighbor key → weight
	edgeCount int                     // number of undirected edges
	mc        int                     // modification count
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[int]*Node),
		adj:   make(map[int]map[int]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
