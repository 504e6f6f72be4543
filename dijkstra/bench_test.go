package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
)

// BenchmarkDijkstra_Random measures a full run on a random graph with a
// spanning path, so every node is reachable.
func BenchmarkDijkstra_Random(b *testing.B) {
	const n = 1000
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithCapacity(n)},
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.IntWeightFn(1, 100))},
		builder.Path(n),
		builder.RandomSparse(n, 0.006),
	)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDijkstra_Grid measures a full run on a 50×50 lattice.
func BenchmarkDijkstra_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithWeightFn(builder.UniformWeightFn(1, 5))},
		builder.Grid(50, 50))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Dijkstra(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
