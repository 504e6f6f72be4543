// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/wgraph/core"
)

// BenchmarkConnect measures edge insertion on a pre-populated node set.
func BenchmarkConnect(b *testing.B) {
	const n = 1 << 12
	g := core.NewGraph(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Connect(i%n, (i*7+1)%n, float64(i%100))
	}
}

// BenchmarkNeighbors measures snapshot cost for a high-degree node.
func BenchmarkNeighbors(b *testing.B) {
	const n = 1 << 10
	g := core.NewGraph(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		g.AddNode(i)
		g.Connect(0, i, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(0)
	}
}

// BenchmarkClone measures a deep copy of a sparse graph.
func BenchmarkClone(b *testing.B) {
	const n = 1 << 10
	g := core.NewGraph(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
	for i := 1; i < n; i++ {
		g.Connect(i-1, i, float64(i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
