package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/core"
)

// ExampleBFS walks a small tree and reconstructs a hop path.
func ExampleBFS() {
	g := core.NewGraph()
	for k := 1; k <= 5; k++ {
		g.AddNode(k)
	}
	g.Connect(1, 2, 3)
	g.Connect(1, 3, 1)
	g.Connect(3, 4, 1)
	g.Connect(4, 5, 1)

	res, err := bfs.BFS(g, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, _ := res.PathTo(5)
	fmt.Println("order:", res.Order)
	fmt.Println("depth of 5:", res.Depth[5])
	fmt.Println("path to 5:", p)
	// Output:
	// order: [1 2 3 4 5]
	// depth of 5: 3
	// path to 5: [1 3 4 5]
}
