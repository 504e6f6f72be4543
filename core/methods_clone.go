// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone carries the counters over, including mc.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: nodes (key + info), edges with their
// weights, and the three counters. The copy shares no memory with g, so later
// mutations of either graph are invisible to the other.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(len(g.nodes)))
	var (
		key    int
		n      *Node
		bucket map[int]float64
	)
	for key, n = range g.nodes {
		clone.nodes[key] = &Node{Key: n.Key, Info: n.Info}
	}
	for key, bucket = range g.adj {
		nb := make(map[int]float64, len(bucket))
		for nbr, w := range bucket {
			nb[nbr] = w
		}
		clone.adj[key] = nb
	}
	clone.edgeCount = g.edgeCount
	clone.mc = g.mc

	return clone
}

// Clear removes every node and edge.
//
// Behavior:
//   - Node and edge counts drop to zero.
//   - mc stays monotonic: it grows by one if anything was removed.
//
// Complexity: O(1) for map reallocation; no iteration over existing entries.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.nodes) == 0 {
		return
	}
	g.nodes = make(map[int]*Node)
	g.adj = make(map[int]map[int]float64)
	g.edgeCount = 0
	g.mc++
}
