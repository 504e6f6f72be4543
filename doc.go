// Package wgraph is an in-memory undirected weighted graph with the
// algorithms that usually come with one: connectivity, shortest paths,
// deep copy and persistence.
//
// 🚀 What is wgraph?
//
//	A thread-safe graph store plus a small algorithm layer:
//		• Core primitives: integer-keyed nodes with an annotation, weighted edges,
//		  a modification counter, cloning, equality and snapshots
//		• Traversals: BFS, DFS, connected components, cycle detection
//		• Shortest paths: Dijkstra with path reconstruction
//		• Persistence: YAML blobs on any vfs.FileSystem
//		• Generators: path, cycle, star, complete, grid, G(n, p)
//
// Under the hood, everything is organized in subpackages:
//
//	core/       Graph, Node, Edge, Snapshot & the WeightedGraph read contract
//	bfs/        breadth-first traversal with depth, parent and hooks
//	dfs/        depth-first traversal, Components, HasCycle
//	dijkstra/   single-source shortest paths on non-negative weights
//	algo/       Algorithms facade: IsConnected, ShortestPathDist, ShortestPath, Save, Load
//	storage/    blob codec and atomic FileStore
//	builder/    deterministic topology generators
//	cmd/wgraph  command line front end
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╲ │
//	    3───2
//
//	four nodes, five edges; ShortestPathDist(0, 2) picks the cheaper of the
//	diagonal and the two-hop routes.
//
//	go install github.com/katalvlaran/wgraph/cmd/wgraph@latest
package wgraph
