// File: methods_edges.go
// Role: Edge lifecycle & queries.
//
// Determinism:
//   - Edges() returns edges sorted by (From, To) with From < To.
//   - NeighborKeys() returns neighbor keys sorted ascending.
//
// Concurrency:
//   - Mutations take mu for writing; queries take it for reading.
package core

import (
	"fmt"
	"sort"
)

// Connect adds the undirected edge {a,b} with weight w.
//
// Implementation:
//   - Stage 1: Under mu write lock, reject self-loops and unknown endpoints.
//   - Stage 2: Reject an already present pair (the stored weight is kept).
//   - Stage 3: Store w under both endpoints; edgeCount+1, mc+1.
//
// Returns:
//   - bool: true iff a new edge was stored.
//
// Notes:
//   - w is not validated. Negative or non-finite weights are stored as given;
//     dijkstra refuses graphs with negative or NaN weights, and storage refuses
//     to save graphs with ±Inf or NaN weights (storage.ErrUnencodable).
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) Connect(a, b int, w float64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if a == b {
		return false
	}
	if _, ok := g.nodes[a]; !ok {
		return false
	}
	if _, ok := g.nodes[b]; !ok {
		return false
	}
	if _, ok := g.adj[a][b]; ok {
		return false
	}

	g.adj[a][b] = w
	g.adj[b][a] = w
	g.edgeCount++
	g.mc++

	return true
}

// RemoveEdge deletes the edge {a,b} if present.
//
// Returns:
//   - bool: true iff an edge was removed (edgeCount−1, mc+1).
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(a, b int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasEdge(a, b) {
		return false
	}
	delete(g.adj[a], b)
	delete(g.adj[b], a)
	g.edgeCount--
	g.mc++

	return true
}

// HasEdge reports whether {a,b} is an edge. Self pairs are never edges.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdge(a, b)
}

// EdgeWeight returns the weight of {a,b}, or NoEdge when the pair is not connected.
// Complexity: O(1).
func (g *Graph) EdgeWeight(a, b int) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasEdge(a, b) {
		return NoEdge
	}

	return g.adj[a][b]
}

// Neighbors returns a snapshot of the neighbor → weight map of key.
//
// Errors:
//   - ErrNodeNotFound: if key is absent.
//
// Complexity:
//   - Time O(deg(key)), Space O(deg(key)).
func (g *Graph) Neighbors(key int) (map[int]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adj[key]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, key)
	}
	out := make(map[int]float64, len(bucket))
	for nbr, w := range bucket {
		out[nbr] = w
	}

	return out, nil
}

// NeighborKeys returns the neighbors of key sorted ascending.
//
// Errors:
//   - ErrNodeNotFound: if key is absent.
//
// Complexity:
//   - Time O(d log d) where d = deg(key), Space O(d).
func (g *Graph) NeighborKeys(key int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.adj[key]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, key)
	}
	out := make([]int, 0, len(bucket))
	for nbr := range bucket {
		out = append(out, nbr)
	}
	sort.Ints(out)

	return out, nil
}

// Edges returns every edge exactly once, sorted by (From, To), From < To.
// Complexity: O(V + E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedEdges()
}

// hasEdge is the lock-free body of HasEdge. Caller holds mu.
func (g *Graph) hasEdge(a, b int) bool {
	if a == b {
		return false
	}
	_, ok := g.adj[a][b]

	return ok
}

// sortedEdges collects each undirected edge once. Caller holds mu.
func (g *Graph) sortedEdges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for a, bucket := range g.adj {
		for b, w := range bucket {
			if a < b {
				out = append(out, Edge{From: a, To: b, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}
