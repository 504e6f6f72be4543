package builder

import "math/rand"

// BuilderOption customizes constructor behavior.
type BuilderOption func(*builderConfig)

// builderConfig is resolved once per BuildGraph call and shared by its constructors.
type builderConfig struct {
	keyOffset int
	rng       *rand.Rand
	weightFn  WeightFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		keyOffset: 0,
		rng:       nil, // no RNG unless explicitly set
		weightFn:  DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// key maps a generated index to a node key.
func (c builderConfig) key(i int) int { return c.keyOffset + i }

// weight draws the next edge weight.
func (c builderConfig) weight() float64 { return c.weightFn(c.rng) }

// WithKeyOffset shifts generated keys to offset, offset+1, …
// Useful to place several generated components in one graph.
func WithKeyOffset(offset int) BuilderOption {
	return func(c *builderConfig) { c.keyOffset = offset }
}

// WithRand sets the random source used by stochastic constructors and weight functions.
// A nil r is ignored.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge weight generator. A nil fn is ignored.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}
