// Package core provides a thread-safe in-memory undirected weighted Graph
// with a minimal, composable API surface.
//
// The Graph G = (V,E) stores:
//
//   - Nodes keyed by caller-assigned integers, each with a string annotation (Info).
//   - Undirected edges with a float64 weight, mirrored in both endpoint buckets:
//     adj[a][b] == adj[b][a] == w.
//   - Three counters: node count, edge count and the modification count (mc).
//
// Rules:
//
//   - No self-loops: Connect(v, v, w) is ignored.
//   - No parallel edges: connecting an existing pair is ignored and keeps the first weight.
//   - Unknown endpoints are ignored by Connect and RemoveEdge.
//   - RemoveNode cascades over incident edges, counting one modification per edge
//     plus one for the node.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(key int) bool                      // O(1)
//	RemoveNode(key int) (Node, error)          // O(deg)
//	HasNode(key int) bool                      // O(1)
//	Node(key int) (Node, bool)                 // O(1)
//	SetInfo(key int, info string) error        // O(1)
//
//	// Edge lifecycle
//	Connect(a, b int, w float64) bool          // O(1)
//	RemoveEdge(a, b int) bool                  // O(1)
//	HasEdge(a, b int) bool                     // O(1)
//	EdgeWeight(a, b int) float64               // O(1), NoEdge if absent
//
//	// Views (snapshots, sorted)
//	Neighbors(key int) (map[int]float64, error) // O(deg)
//	NeighborKeys(key int) ([]int, error)        // O(deg log deg)
//	Nodes() []Node, NodeKeys() []int            // O(V log V)
//	Edges() []Edge                              // O(V + E log E)
//
//	// Whole-graph
//	Clone() *Graph, Clear(), Equal(*Graph) bool, String() string
//	Snapshot() Snapshot, FromSnapshot(Snapshot) (*Graph, error)
//
// Traversal algorithms live in sibling packages (bfs, dijkstra) and consume
// the read-only WeightedGraph interface.
package core
