package core

// Equal reports whether g and other describe the same graph.
//
// Two graphs are equal iff
//   - they hold the same number of nodes and the same number of edges,
//   - every node of g exists in other with the same Info,
//   - every node has the same neighbor → weight map in both graphs.
//
// The modification count is history, not structure, and is ignored.
// A nil other is only equal to a nil g.
//
// Complexity: O(V + E).
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g == other {
		return true
	}

	// Copy other's state under its own lock so the two graphs are never
	// locked at the same time.
	theirs := other.Clone()

	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.nodes) != len(theirs.nodes) || g.edgeCount != theirs.edgeCount {
		return false
	}
	for key, n := range g.nodes {
		m, ok := theirs.nodes[key]
		if !ok || m.Info != n.Info {
			return false
		}
		if !sameBucket(g.adj[key], theirs.adj[key]) {
			return false
		}
	}

	return true
}

// sameBucket compares two neighbor → weight maps.
func sameBucket(a, b map[int]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for nbr, w := range a {
		v, ok := b[nbr]
		if !ok || v != w {
			return false
		}
	}

	return true
}
