// Package dijkstra provides Dijkstra's shortest-path algorithm on undirected
// graphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source node to
//     every node of a core.WeightedGraph in O((V + E) log V) time.
//   - It relies on a min-heap (priority queue) to always expand the next-closest node.
//   - Supports optional path reconstruction and a distance cap.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - WithReturnPath: keep a predecessor map so Result.PathTo can rebuild each path.
//   - WithMaxDistance: stop exploring beyond a given distance; farther nodes stay unreached.
//   - Scratch state is private to each call; the graph is never written, so
//     concurrent runs over the same graph are safe.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       the graph argument is nil.
//   - ErrNodeNotFound:   the source node does not exist in the graph.
//   - ErrNegativeWeight: some edge has a negative or NaN weight (O(E) pre-scan).
//   - ErrBadMaxDistance: WithMaxDistance received a negative or NaN cap.
//   - ErrUnreachable:    Result.PathTo asked for a node the run did not reach.
//   - ErrNoPathRecorded: Result.PathTo on a run without WithReturnPath.
//
// API reference:
//
//	func Dijkstra(g core.WeightedGraph, source int, opts ...Option) (*Result, error)
//	func (r *Result) Distance(key int) (float64, bool)
//	func (r *Result) PathTo(dest int) ([]int, error)
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, 4, dijkstra.WithReturnPath())
//	if err != nil {
//	    // handle error
//	}
//	d, _ := res.Distance(1)   // 6
//	path, _ := res.PathTo(1)  // [4 3 2 1]
package dijkstra
