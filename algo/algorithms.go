// File: algorithms.go
// Role: Graph Algorithms facade over one attached core.Graph.
// Determinism:
//   - IsConnected starts from the smallest key; Dijkstra ties break on key.
// Concurrency:
//   - The attached-graph slot is guarded by a mutex; the graph itself
//     carries its own lock. Queries read the slot once and work on that graph.

package algo

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dfs"
	"github.com/katalvlaran/wgraph/dijkstra"
	"github.com/katalvlaran/wgraph/storage"
)

// Algorithms runs connectivity, shortest-path, copy and persistence
// operations against its attached graph. Nothing here mutates the graph.
type Algorithms struct {
	lock  sync.RWMutex
	g     *core.Graph
	store *storage.FileStore
}

// New returns an Algorithms attached to an empty graph, persisting through
// a FileStore on the working directory unless configured otherwise.
func New(opts ...Option) *Algorithms {
	a := &Algorithms{}
	for _, opt := range opts {
		opt(a)
	}
	if a.g == nil {
		a.g = core.NewGraph()
	}
	if a.store == nil {
		a.store = storage.NewFileStore(".")
	}

	return a
}

// Init attaches g. Subsequent operations act on g.
func (a *Algorithms) Init(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	a.lock.Lock()
	a.g = g
	a.lock.Unlock()

	return nil
}

// Graph returns the attached graph (not a copy).
func (a *Algorithms) Graph() *core.Graph {
	a.lock.RLock()
	defer a.lock.RUnlock()

	return a.g
}

// Copy returns an independent deep copy of the attached graph.
func (a *Algorithms) Copy() *core.Graph {
	return a.Graph().Clone()
}

// IsConnected reports whether every node is reachable from every other.
// Graphs with zero or one node are connected.
//
// Implementation:
//   - Stage 1: Trivial answer for NodeCount ≤ 1.
//   - Stage 2: BFS from the smallest key.
//   - Stage 3: Compare the number of reached nodes with NodeCount.
//
// Complexity: O(V log V + E).
func (a *Algorithms) IsConnected() bool {
	g := a.Graph()
	keys := g.NodeKeys()
	if len(keys) <= 1 {
		return true
	}

	res, err := bfs.BFS(g, keys[0])
	if err != nil {
		// The start key was just listed; a failure means a concurrent removal.
		log.LogError(err, "connectivity walk from {{key}} failed", "key", keys[0])
		return false
	}

	return len(res.Order) == g.NodeCount()
}

// Components returns the connected components of the attached graph, each
// sorted ascending, ordered by smallest key.
func (a *Algorithms) Components() [][]int {
	comps, err := dfs.Components(a.Graph())
	if err != nil {
		log.LogError(err, "component walk failed")
		return nil
	}

	return comps
}

// HasCycle reports whether the graph contains a cycle. An empty graph or a
// forest has none.
func (a *Algorithms) HasCycle() bool {
	cyclic, err := dfs.HasCycle(a.Graph())
	if err != nil {
		log.LogError(err, "cycle check failed")
		return false
	}

	return cyclic
}

// ShortestPathDist returns the total weight of a shortest path between src
// and dest, or NoPath when either endpoint is absent or dest is unreachable.
// src == dest yields 0 without consulting the graph.
func (a *Algorithms) ShortestPathDist(src, dest int) float64 {
	if src == dest {
		return 0
	}
	d, err := a.Distance(src, dest)
	if err != nil {
		log.Debug("no distance {{src}} -> {{dest}}: {{reason}}", "src", src, "dest", dest, "reason", err.Error())
		return NoPath
	}

	return d
}

// ShortestPath returns the nodes of a shortest path from src to dest,
// endpoints included. The bool is false when either endpoint is absent or
// dest is unreachable.
func (a *Algorithms) ShortestPath(src, dest int) ([]core.Node, bool) {
	g := a.Graph()
	keys, err := a.path(g, src, dest)
	if err != nil {
		log.Debug("no path {{src}} -> {{dest}}: {{reason}}", "src", src, "dest", dest, "reason", err.Error())
		return nil, false
	}

	nodes := make([]core.Node, 0, len(keys))
	for _, k := range keys {
		n, ok := g.Node(k)
		if !ok {
			return nil, false
		}
		nodes = append(nodes, n)
	}

	return nodes, true
}

// Distance is the typed form of ShortestPathDist.
//
// Errors:
//   - ErrNodeNotFound if src or dest is absent.
//   - ErrUnreachable if dest is not reachable from src.
//   - dijkstra.ErrNegativeWeight (wrapped) if the graph carries a negative weight.
func (a *Algorithms) Distance(src, dest int) (float64, error) {
	g := a.Graph()
	if err := requireNodes(g, src, dest); err != nil {
		return NoPath, err
	}

	res, err := dijkstra.Dijkstra(g, src)
	if err != nil {
		return NoPath, fmt.Errorf("algo: distance %d -> %d: %w", src, dest, err)
	}
	d, ok := res.Distance(dest)
	if !ok {
		return NoPath, fmt.Errorf("%w: %d -> %d", ErrUnreachable, src, dest)
	}

	return d, nil
}

// Path is the typed form of ShortestPath, returning node keys.
// Errors are those of Distance.
func (a *Algorithms) Path(src, dest int) ([]int, error) {
	return a.path(a.Graph(), src, dest)
}

func (a *Algorithms) path(g *core.Graph, src, dest int) ([]int, error) {
	if err := requireNodes(g, src, dest); err != nil {
		return nil, err
	}
	if src == dest {
		return []int{src}, nil
	}

	res, err := dijkstra.Dijkstra(g, src, dijkstra.WithReturnPath())
	if err != nil {
		return nil, fmt.Errorf("algo: path %d -> %d: %w", src, dest, err)
	}
	keys, err := res.PathTo(dest)
	if err != nil {
		if errors.Is(err, dijkstra.ErrUnreachable) {
			return nil, fmt.Errorf("%w: %d -> %d", ErrUnreachable, src, dest)
		}
		return nil, fmt.Errorf("algo: path %d -> %d: %w", src, dest, err)
	}

	return keys, nil
}

// Save persists the attached graph at location.
func (a *Algorithms) Save(location string) error {
	a.lock.RLock()
	g, store := a.g, a.store
	a.lock.RUnlock()

	if err := store.Save(location, g); err != nil {
		return err
	}
	log.Info("saved graph to {{location}}", "location", location)

	return nil
}

// Load replaces the attached graph with the one stored at location.
// On any failure the attached graph is left unchanged.
func (a *Algorithms) Load(location string) error {
	a.lock.RLock()
	store := a.store
	a.lock.RUnlock()

	g, err := store.Load(location)
	if err != nil {
		return err
	}

	a.lock.Lock()
	a.g = g
	a.lock.Unlock()
	log.Info("loaded graph from {{location}} ({{nodes}} nodes, {{edges}} edges)",
		"location", location, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	return nil
}

func requireNodes(g *core.Graph, keys ...int) error {
	for _, k := range keys {
		if !g.HasNode(k) {
			return fmt.Errorf("%w: %d", ErrNodeNotFound, k)
		}
	}

	return nil
}
