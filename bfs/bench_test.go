package bfs_test

import (
	"testing"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
)

// BenchmarkBFS_Grid measures traversal of a 64×64 grid.
func BenchmarkBFS_Grid(b *testing.B) {
	const side = 64
	g, err := builder.BuildGraph([]core.GraphOption{core.WithCapacity(side * side)}, nil, builder.Grid(side, side))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.BFS(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
