// File: snapshot.go
// Role: Plain-value export/import of the full structural state.
// Determinism:
//   - Snapshot() lists nodes by key and edges by (From, To).
// Concurrency:
//   - Snapshot takes the read lock; FromSnapshot builds a private graph.

package core

import (
	"fmt"
	"math"
)

// Snapshot is the complete structural state of a Graph as plain data:
// nodes with their annotations, edges with their weights and the three
// counters. It is what storage encodes; it carries no behavior.
type Snapshot struct {
	Nodes     []Node `json:"nodes"`
	Edges     []Edge `json:"edges"`
	NodeCount int    `json:"nodeCount"`
	EdgeCount int    `json:"edgeCount"`
	ModCount  int    `json:"modCount"`
}

// Snapshot exports g.
// Complexity: O(V log V + E log E).
func (g *Graph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keys := g.sortedKeys()
	nodes := make([]Node, len(keys))
	for i, k := range keys {
		nodes[i] = *g.nodes[k]
	}

	return Snapshot{
		Nodes:     nodes,
		Edges:     g.sortedEdges(),
		NodeCount: len(g.nodes),
		EdgeCount: g.edgeCount,
		ModCount:  g.mc,
	}
}

// FromSnapshot rebuilds a Graph from s.
//
// Implementation:
//   - Stage 1: Register nodes, rejecting duplicate keys.
//   - Stage 2: Register edges, rejecting self-loops, unknown endpoints,
//     duplicate pairs and non-finite weights.
//   - Stage 3: Check the recorded counters against what was rebuilt, and
//     that mc is at least the number of elements it must have counted.
//
// Errors:
//   - ErrCorruptSnapshot (wrapped with the offending detail).
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func FromSnapshot(s Snapshot) (*Graph, error) {
	g := NewGraph(WithCapacity(len(s.Nodes)))

	for _, n := range s.Nodes {
		if _, dup := g.nodes[n.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate node %d", ErrCorruptSnapshot, n.Key)
		}
		g.nodes[n.Key] = &Node{Key: n.Key, Info: n.Info}
		g.adj[n.Key] = make(map[int]float64)
	}

	for _, e := range s.Edges {
		switch {
		case e.From == e.To:
			return nil, fmt.Errorf("%w: self-loop on %d", ErrCorruptSnapshot, e.From)
		case g.nodes[e.From] == nil || g.nodes[e.To] == nil:
			return nil, fmt.Errorf("%w: edge %d-%d references an unknown node", ErrCorruptSnapshot, e.From, e.To)
		case math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0):
			return nil, fmt.Errorf("%w: edge %d-%d has non-finite weight", ErrCorruptSnapshot, e.From, e.To)
		}
		if _, dup := g.adj[e.From][e.To]; dup {
			return nil, fmt.Errorf("%w: duplicate edge %d-%d", ErrCorruptSnapshot, e.From, e.To)
		}
		g.adj[e.From][e.To] = e.Weight
		g.adj[e.To][e.From] = e.Weight
		g.edgeCount++
	}

	if s.NodeCount != len(g.nodes) || s.EdgeCount != g.edgeCount {
		return nil, fmt.Errorf("%w: counters (%d nodes, %d edges) do not match content (%d nodes, %d edges)",
			ErrCorruptSnapshot, s.NodeCount, s.EdgeCount, len(g.nodes), g.edgeCount)
	}
	if s.ModCount < len(g.nodes)+g.edgeCount {
		return nil, fmt.Errorf("%w: modification count %d below element count %d",
			ErrCorruptSnapshot, s.ModCount, len(g.nodes)+g.edgeCount)
	}
	g.mc = s.ModCount

	return g, nil
}
