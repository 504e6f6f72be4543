// Package bfs provides breadth-first search over a core.WeightedGraph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error), MaxDepth limit, context cancellation.
//
// Why
//
//   - Reachability and connectivity in O(V + E): a graph is connected iff a
//     traversal from any node reaches NodeCount() nodes (see package algo).
//
// Determinism
//
//	core.Graph.NeighborKeys returns keys in ascending order and BFS enqueues
//	neighbors in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E log Δ) with Δ the maximum degree (sorted neighbor snapshots).
//   - Memory: O(V) for queue, visited set, depth and parent maps.
package bfs
