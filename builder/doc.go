// Package builder provides deterministic generators of core.Graph topologies.
//
// A Constructor adds nodes and edges to an existing graph; BuildGraph creates
// a graph and applies constructors in order. Node keys are cfg.keyOffset+i for
// the i-th generated node, edge weights come from a WeightFn fed by the
// configured *rand.Rand.
//
// Constructors:
//
//	Path(n)               0-1-…-(n-1)                 n ≥ 1
//	Cycle(n)              ring 0-1-…-(n-1)-0          n ≥ 3
//	Star(n)               hub 0 with spokes 1..n-1    n ≥ 2
//	Complete(n)           K_n                         n ≥ 1
//	Grid(rows, cols)      4-neighbour lattice         rows, cols ≥ 1
//	RandomSparse(n, p)    G(n, p)                     n ≥ 1, 0 ≤ p ≤ 1, needs an rng
//
// Determinism:
//
//   - Same constructors, same options and same seed give Equal graphs with the
//     same modification count.
//
// Errors:
//
//   - ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed.
package builder
