package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/builder"
	"github.com/katalvlaran/wgraph/core"
)

func TestConstructors_Shape(t *testing.T) {
	cases := []struct {
		name         string
		cons         builder.Constructor
		nodes, edges int
	}{
		{"path 1", builder.Path(1), 1, 0},
		{"path 5", builder.Path(5), 5, 4},
		{"cycle 6", builder.Cycle(6), 6, 6},
		{"star 5", builder.Star(5), 5, 4},
		{"complete 5", builder.Complete(5), 5, 10},
		{"grid 3x4", builder.Grid(3, 4), 12, 17},
		{"random p=1", builder.RandomSparse(6, 1), 6, 15},
		{"random p=0", builder.RandomSparse(6, 0), 6, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.nodes, g.NodeCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
			assert.Equal(t, tc.nodes+tc.edges, g.ModCount())
		})
	}
}

func TestConstructors_Errors(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"path 0", builder.Path(0), nil, builder.ErrTooFewVertices},
		{"cycle 2", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"star 1", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"complete 0", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"grid 0x3", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"random no rng", builder.RandomSparse(4, 0.5), nil, builder.ErrNeedRandSource},
		{"random p>1", builder.RandomSparse(4, 1.5), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.opts, tc.cons)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrConstructFailed)
}

func TestBuildGraph_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 10))}

	a, err := builder.BuildGraph(nil, opts, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	opts = []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 10))}
	b, err := builder.BuildGraph(nil, opts, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.String(), b.String())
}

func TestApply_KeyOffsetComponents(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, builder.Apply(g, nil, builder.Cycle(3)))
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithKeyOffset(10)}, builder.Path(2)))

	assert.Equal(t, []int{0, 1, 2, 10, 11}, g.NodeKeys())
	assert.True(t, g.HasEdge(2, 0))
	assert.True(t, g.HasEdge(10, 11))
	assert.False(t, g.HasEdge(2, 10))
}

func TestWeightFns(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(rng))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(3, 4)(nil))
	for i := 0; i < 100; i++ {
		w := builder.UniformWeightFn(3, 4)(rng)
		assert.True(t, w >= 3 && w < 4, "weight %v out of range", w)
		k := builder.IntWeightFn(1, 3)(rng)
		assert.Contains(t, []float64{1, 2, 3}, k)
	}
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })
	assert.Panics(t, func() { builder.IntWeightFn(-1, 1) })
}

func TestIntWeightFn_FullRange(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, bounds := range [][2]int{{0, math.MaxInt}, {1, math.MaxInt}, {math.MaxInt, math.MaxInt}} {
		fn := builder.IntWeightFn(bounds[0], bounds[1])
		for i := 0; i < 50; i++ {
			var w float64
			require.NotPanics(t, func() { w = fn(rng) })
			assert.GreaterOrEqual(t, w, float64(bounds[0]))
			assert.LessOrEqual(t, w, float64(bounds[1]))
		}
	}
}
