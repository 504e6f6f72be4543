// Package dfs implements depth-first search over an undirected
// core.WeightedGraph.
//
// What:
//
//   - DFS: recursive walk with pre/post-order hooks, depth limit, neighbor
//     filter, cancellation and full-forest traversal.
//   - Components: connected components, each sorted, ordered by smallest key.
//   - HasCycle: cycle detection for undirected graphs.
//
// Determinism:
//
//   - Neighbors are followed in ascending key order; forest roots are taken in
//     ascending key order.
//
// Complexity:
//
//   - Time O(V + E) plus the sorting of neighbor lists, Space O(V).
//
// Errors:
//
//   - ErrGraphNil, ErrStartNodeNotFound, hook errors (wrapped), ctx.Err().
package dfs
