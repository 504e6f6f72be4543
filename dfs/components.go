package dfs

import (
	"sort"

	"github.com/katalvlaran/wgraph/core"
)

// Components returns the connected components of g. Each component is
// sorted ascending; components are ordered by their smallest key.
// An empty graph has no components.
func Components(g core.WeightedGraph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	res, err := DFS(g, 0, WithFullTraversal())
	if err != nil {
		return nil, err
	}

	// Pre-order lists each tree contiguously; a tree starts at depth 0.
	comps := make([][]int, 0, len(res.Roots))
	for _, k := range res.PreOrder {
		if res.Depth[k] == 0 {
			comps = append(comps, nil)
		}
		comps[len(comps)-1] = append(comps[len(comps)-1], k)
	}
	for _, c := range comps {
		sort.Ints(c)
	}

	return comps, nil
}

// HasCycle reports whether the undirected graph g contains a cycle.
// A forest with V nodes and C components has exactly V-C edges; any
// further edge closes a cycle.
func HasCycle(g core.WeightedGraph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	comps, err := Components(g)
	if err != nil {
		return false, err
	}

	return len(g.Edges()) > g.NodeCount()-len(comps), nil
}
