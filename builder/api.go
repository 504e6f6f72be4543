// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// Constructor adds one topology to g using the resolved configuration.
// Constructors never remove anything and never panic on bad parameters;
// they return sentinel errors wrapped with their method name.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with gopts and applies every constructor in
// order under one configuration.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - The first error returned by a constructor, wrapped once.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// addNodes inserts keys cfg.key(0..n-1).
func addNodes(g *core.Graph, cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		g.AddNode(cfg.key(i))
	}
}
