// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for wgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the core tests.
//   - Centralize the invariant checks (symmetry, counters) every mutation test re-runs.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight1 = 1.0
	Weight2 = 2.0
	Weight3 = 3.0
	Weight4 = 4.0
	Weight7 = 7.0
	Weight8 = 8.0
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds   = 200
	NConcurrentRounds = 100
	NReaders          = 50
)

// NewPentagon RETURNS the five-node reference graph:
//
//	nodes {0,1,2,3,4}
//	edges (0,4,8) (4,3,3) (3,0,7) (3,1,4) (3,2,2) (1,0,3) (2,1,1)
//
// After construction: 5 nodes, 7 edges, mc = 12.
func NewPentagon(t testing.TB) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for k := 0; k < 5; k++ {
		require.True(t, g.AddNode(k), "AddNode(%d)", k)
	}
	edges := []core.Edge{
		{From: 0, To: 4, Weight: Weight8},
		{From: 4, To: 3, Weight: Weight3},
		{From: 3, To: 0, Weight: Weight7},
		{From: 3, To: 1, Weight: Weight4},
		{From: 3, To: 2, Weight: Weight2},
		{From: 1, To: 0, Weight: Weight3},
		{From: 2, To: 1, Weight: Weight1},
	}
	for _, e := range edges {
		require.True(t, g.Connect(e.From, e.To, e.Weight), "Connect(%d,%d)", e.From, e.To)
	}

	return g
}

// RequireSymmetric FAILS the test if any adjacency entry lacks its mirror,
// or if the edge counter disagrees with the adjacency content.
func RequireSymmetric(t *testing.T, g *core.Graph) {
	t.Helper()

	halfEdges := 0
	for _, a := range g.NodeKeys() {
		nbrs, err := g.Neighbors(a)
		require.NoError(t, err)
		for b, w := range nbrs {
			halfEdges++
			require.True(t, g.HasEdge(b, a), "edge %d-%d has no mirror", a, b)
			require.Equal(t, w, g.EdgeWeight(b, a), "weight of %d-%d differs from mirror", a, b)
		}
	}
	require.Equal(t, g.EdgeCount()*2, halfEdges, "edge counter vs adjacency content")
}
