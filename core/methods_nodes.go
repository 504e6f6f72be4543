// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - NodeKeys() and Nodes() return entries sorted by key ascending.
//
// Concurrency:
//   - Mutations take mu for writing; queries take it for reading.
package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a node with an empty Info if key is absent.
//
// Implementation:
//   - Stage 1: Under mu write lock, check presence.
//   - Stage 2: If missing, register the Node and an empty adjacency bucket, bump mc.
//
// Returns:
//   - bool: true iff a node was inserted; re-adding an existing key is a no-op.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddNode(key int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[key]; exists {
		return false
	}
	g.nodes[key] = &Node{Key: key}
	g.adj[key] = make(map[int]float64)
	g.mc++

	return true
}

// HasNode reports whether key is present.
// Complexity: O(1).
func (g *Graph) HasNode(key int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[key]

	return ok
}

// Node returns a copy of the node stored under key.
// The bool is false when the key is absent.
// Complexity: O(1).
func (g *Graph) Node(key int) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[key]
	if !ok {
		return Node{}, false
	}

	return *n, true
}

// SetInfo replaces the annotation of the node stored under key.
//
// Annotations are not structural: mc is left unchanged.
// info is stored as given; storage only saves valid UTF-8 annotations.
//
// Errors:
//   - ErrNodeNotFound: if key is absent.
func (g *Graph) SetInfo(key int, info string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	n, ok := g.nodes[key]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, key)
	}
	n.Info = info

	return nil
}

// RemoveNode deletes the node stored under key together with every incident edge.
//
// Implementation:
//   - Stage 1: Acquire mu write lock and verify presence (ErrNodeNotFound).
//   - Stage 2: Drop each incident edge from both buckets; edgeCount−1 and mc+1 per edge.
//   - Stage 3: Drop the node and its bucket; mc+1.
//
// Returns:
//   - Node: the removed node (key + info).
//   - error: nil on success.
//
// Errors:
//   - ErrNodeNotFound: if key is absent. This is a reportable miss, the graph is untouched.
//
// Complexity:
//   - Time O(deg(key)), Space O(1).
func (g *Graph) RemoveNode(key int) (Node, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, exists := g.nodes[key]
	if !exists {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, key)
	}

	// Incident edges first, one modification each.
	var nbr int
	for nbr = range g.adj[key] {
		delete(g.adj[nbr], key)
		delete(g.adj[key], nbr)
		g.edgeCount--
		g.mc++
	}

	delete(g.adj, key)
	delete(g.nodes, key)
	g.mc++

	return *n, nil
}

// NodeKeys returns all node keys sorted ascending.
// Complexity: O(V log V).
func (g *Graph) NodeKeys() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedKeys()
}

// Nodes returns a snapshot of all nodes sorted by key.
// Mutating the returned values does not affect the graph.
// Complexity: O(V log V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keys := g.sortedKeys()
	out := make([]Node, len(keys))
	for i, k := range keys {
		out[i] = *g.nodes[k]
	}

	return out
}

// sortedKeys returns the node keys in ascending order. Caller holds mu.
func (g *Graph) sortedKeys() []int {
	keys := make([]int, 0, len(g.nodes))
	for k := range g.nodes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
