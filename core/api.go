// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Capability contract consumed by traversal packages, plus the O(1) counters.
// Policy:
//   - WeightedGraph is read-only; algorithms must not mutate the graph they walk.
//   - Every exported getter documents complexity and locking strategy.

package core

// WeightedGraph is the read-only view that traversal packages (bfs, dijkstra)
// depend on. *Graph is the only implementation shipped with wgraph; the
// interface exists so algorithms can be exercised against any store that
// keeps the same invariants (symmetric adjacency, unique keys).
type WeightedGraph interface {
	// HasNode reports whether key is present.
	HasNode(key int) bool

	// NodeCount returns the number of nodes.
	NodeCount() int

	// NodeKeys returns all keys in ascending order.
	NodeKeys() []int

	// NeighborKeys returns the neighbors of key in ascending order.
	NeighborKeys(key int) ([]int, error)

	// Neighbors returns a snapshot of key's neighbor → weight map.
	Neighbors(key int) (map[int]float64, error)

	// EdgeWeight returns the weight of {a,b} or NoEdge.
	EdgeWeight(a, b int) float64

	// Edges returns every edge once, sorted by (From, To).
	Edges() []Edge
}

var _ WeightedGraph = (*Graph)(nil)

// NodeCount returns the number of nodes.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// ModCount returns the modification count.
//
// The value never decreases. It grows by one for every node insertion,
// node removal, edge insertion and edge removal that actually changed the
// graph; no-op calls and SetInfo leave it untouched.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) ModCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.mc
}
