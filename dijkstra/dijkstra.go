// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source node to all
// other reachable nodes in a graph with non-negative edge weights.
// It processes nodes in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is settled at most once: V extractions that do real work.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Each heap operation (Push/Pop) costs O(log N), where N ≤ V + E. Simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for distance and predecessor maps.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring
//     stale entries when popped. This keeps the heap a plain container/heap slice; an
//     indexed heap would bound it to V entries at the price of position bookkeeping.
//   - There is no early exit on a target: the run settles the whole component of Source.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/wgraph/core"
)

// Dijkstra computes shortest distances from source to all other nodes of g.
//
// Returns:
//
//   - *Result: Dist for every node (+Inf if unreachable) and, with
//     WithReturnPath, the predecessor map.
//   - err: error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain source (ErrNodeNotFound).
//  4. No edge in g can have a negative or NaN weight (ErrNegativeWeight).
//
// The graph is only read: all scratch state (distances, settled flags, heap)
// belongs to this call.
func Dijkstra(g core.WeightedGraph, source int, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate graph and source
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, source)
	}

	// 3) Pre-scan all edges to detect negative weights. Fail fast with ErrNegativeWeight.
	for _, e := range g.Edges() {
		if e.Weight < 0 || math.IsNaN(e.Weight) {
			return nil, fmt.Errorf("%w: edge %d-%d weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Prepare data structures and run.
	keys := g.NodeKeys()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int]float64, len(keys)),
		settled: make(map[int]bool, len(keys)),
		pq:      make(nodePQ, 0, len(keys)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[int]int, len(keys))
	}
	r.init(keys, source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       core.WeightedGraph // The input graph; read-only within Dijkstra.
	options Options            // Configuration options.
	dist    map[int]float64    // Maps node key → current best distance from source.
	prev    map[int]int        // Maps node key → predecessor on the shortest path (nil if not requested).
	settled map[int]bool       // Tracks if a node's distance is final.
	pq      nodePQ             // Min-heap of *nodeItem for lazy priority queue.
}

// init sets every distance to +Inf, the source to 0, and seeds the heap.
func (r *runner) init(keys []int, source int) {
	inf := math.Inf(1)
	for _, k := range keys {
		r.dist[k] = inf
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{key: source, dist: 0})
}

// process is the core loop: repeatedly extract the closest unsettled node
// and relax its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable nodes processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Stale entry: a shorter distance was pushed after this one, or the node is done.
		if r.settled[item.key] || item.dist > r.dist[item.key] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.settled[item.key] = true

		if err := r.relax(item.key); err != nil {
			return err
		}
	}

	// Entries above MaxDistance may have lowered dist without being settled;
	// they count as unreached.
	if !math.IsInf(r.options.MaxDistance, 1) {
		r.dropUnsettled()
	}

	return nil
}

// relax examines each edge incident to u and improves neighbor distances.
// Assumes r.dist[u] is final.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	du := r.dist[u]
	for v, w := range neighbors {
		if r.settled[v] {
			continue
		}
		nd := du + w
		if nd > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal distances keep the first predecessor.
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{key: v, dist: nd})
	}

	return nil
}

// dropUnsettled resets every node that was not settled back to +Inf and
// forgets its predecessor.
func (r *runner) dropUnsettled() {
	inf := math.Inf(1)
	for k := range r.dist {
		if !r.settled[k] {
			r.dist[k] = inf
			if r.prev != nil {
				delete(r.prev, k)
			}
		}
	}
}

// nodeItem represents a node and a tentative distance from the source.
type nodeItem struct {
	key  int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, with key as a
// tie-breaker so runs are reproducible.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].key < pq[j].key
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
