package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/bfs"
	"github.com/katalvlaran/wgraph/core"
)

// path builds 0–1–2–…–(n-1).
func path(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode(i)
		if i > 0 {
			g.Connect(i-1, i, float64(i))
		}
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(core.NewGraph(), 0)
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)

	_, err = bfs.BFS(path(1), 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SingleNode covers the trivial one-node graph.
func TestBFS_SingleNode(t *testing.T) {
	res, err := bfs.BFS(path(1), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.Equal(t, 0, res.Depth[0])
	assert.Empty(t, res.Parent)
}

// TestBFS_CycleAndDepths covers a square cycle and checks layers.
func TestBFS_CycleAndDepths(t *testing.T) {
	// 1–2–3–4–1
	g := core.NewGraph()
	for k := 1; k <= 4; k++ {
		g.AddNode(k)
	}
	g.Connect(1, 2, 1)
	g.Connect(2, 3, 1)
	g.Connect(3, 4, 1)
	g.Connect(4, 1, 1)

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 3}, res.Order)
	assert.Equal(t, map[int]int{1: 0, 2: 1, 4: 1, 3: 2}, res.Depth)
	assert.Equal(t, 2, res.Parent[3], "ties resolve to the smaller neighbor")

	p, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, p)
}

// TestBFS_Disconnected verifies unreachable nodes are reported as such.
func TestBFS_Disconnected(t *testing.T) {
	g := path(3)
	g.AddNode(10)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Len(t, res.Order, 3)
	assert.False(t, res.Reached(10))
	_, err = res.PathTo(10)
	assert.Error(t, err)
}

// TestBFS_MaxDepth stops at the configured layer.
func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(path(6), 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)

	res, err = bfs.BFS(path(6), 0, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 6)
}

// TestBFS_OnVisitAbort verifies hook errors propagate wrapped.
func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	seen := 0
	_, err := bfs.BFS(path(5), 0, bfs.WithOnVisit(func(key, depth int) error {
		seen++
		if key == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, seen)
}

// TestBFS_Cancelled verifies the context is honored before each visit.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(path(3), 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBFS_DoesNotMutateGraph confirms traversal leaves the store untouched.
func TestBFS_DoesNotMutateGraph(t *testing.T) {
	g := path(4)
	mc := g.ModCount()
	before := g.Clone()

	_, err := bfs.BFS(g, 2)
	require.NoError(t, err)
	assert.Equal(t, mc, g.ModCount())
	assert.True(t, before.Equal(g))
}
