// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_random_sparse.go: Erdős–Rényi G(n, p) constructor.
//
// Contract:
//   • n ≥ 1, 0 ≤ p ≤ 1, cfg.rng required.
//   • Pairs (i, j), i < j, are visited in lexicographic order; each is kept
//     with probability p. One rng draw per pair, one more per kept edge for
//     its weight (if the WeightFn uses the rng).
//
// Complexity:
//   • Time: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const methodRandomSparse = "RandomSparse"

// RandomSparse returns a Constructor for a G(n, p) random graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodRandomSparse, n, ErrTooFewVertices)
		}
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					g.Connect(cfg.key(i), cfg.key(j), cfg.weight())
				}
			}
		}

		return nil
	}
}
