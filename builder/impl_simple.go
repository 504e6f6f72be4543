// SPDX-License-Identifier: MIT
// Package: wgraph/builder
//
// impl_simple.go: Path, Cycle, Star and Complete constructors.
//
// Contract:
//   • Nodes are added in ascending index order before any edge.
//   • Edges are emitted in a fixed order, so weights drawn from a seeded rng
//     land on the same pairs every time.
//   • Pairs that already exist in g keep their weight (core.Connect is a no-op).

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathNodes     = 1
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Path returns a Constructor for the path 0-1-…-(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		addNodes(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			g.Connect(cfg.key(i), cfg.key(i+1), cfg.weight())
		}

		return nil
	}
}

// Cycle returns a Constructor for the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		addNodes(g, cfg, n)
		// i -> (i+1)%n closes the ring at i == n-1.
		for i := 0; i < n; i++ {
			g.Connect(cfg.key(i), cfg.key((i+1)%n), cfg.weight())
		}

		return nil
	}
}

// Star returns a Constructor for a hub (index 0) joined to n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		addNodes(g, cfg, n)
		for i := 1; i < n; i++ {
			g.Connect(cfg.key(0), cfg.key(i), cfg.weight())
		}

		return nil
	}
}

// Complete returns a Constructor for K_n, edges emitted in lexicographic (i, j) order.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		addNodes(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.Connect(cfg.key(i), cfg.key(j), cfg.weight())
			}
		}

		return nil
	}
}
