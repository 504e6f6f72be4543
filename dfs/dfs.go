package dfs

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// dfsWalker holds the state of one traversal.
type dfsWalker struct {
	graph core.WeightedGraph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs a recursive depth-first walk from start.
//
// Neighbors are followed in ascending key order, so the result is
// deterministic. With FullTraversal, start is ignored and every node is
// reached, each unvisited node in ascending key order starting a new tree.
//
// On a hook error, neighbor lookup failure or cancellation the partial
// result is returned together with the error.
//
// Complexity: O(V log V + E log Δ) for the sorted neighbor lists; O(V) stack depth.
func DFS(g core.WeightedGraph, start int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if !dopts.FullTraversal && !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, start)
	}

	keys := g.NodeKeys()
	res := &DFSResult{
		PreOrder: make([]int, 0, len(keys)),
		Order:    make([]int, 0, len(keys)),
		Depth:    make(map[int]int, len(keys)),
		Parent:   make(map[int]int, len(keys)),
		Visited:  make(map[int]bool, len(keys)),
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}

	roots := []int{start}
	if dopts.FullTraversal {
		roots = keys
	}
	for _, root := range roots {
		if res.Visited[root] {
			continue
		}
		res.Roots = append(res.Roots, root)
		if err := w.traverse(root, 0); err != nil {
			return res, err
		}
	}

	return res, nil
}

// traverse visits key at depth and recurses into unvisited neighbors.
func (w *dfsWalker) traverse(key, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[key] = true
	w.res.Depth[key] = depth
	w.res.PreOrder = append(w.res.PreOrder, key)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(key); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", key, err)
		}
	}

	nbrs, err := w.graph.NeighborKeys(key)
	if err != nil {
		return fmt.Errorf("dfs: NeighborKeys(%d): %w", key, err)
	}
	for _, nbr := range nbrs {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(key, nbr) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nbr] {
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nbr] = key
		if err = w.traverse(nbr, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(key); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", key, err)
		}
	}
	w.res.Order = append(w.res.Order, key)

	return nil
}
