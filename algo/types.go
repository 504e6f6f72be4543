// Package algo defines the Algorithms facade: one attached graph plus the
// queries and persistence operations run against it.
package algo

import (
	"errors"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/storage"
)

// NoPath is the distance reported by ShortestPathDist when no path exists.
const NoPath float64 = -1

// Sentinel errors for the typed queries and persistence.
var (
	// ErrNodeNotFound indicates that an endpoint is absent from the attached graph.
	ErrNodeNotFound = errors.New("algo: node not found")

	// ErrUnreachable indicates that dest cannot be reached from src.
	ErrUnreachable = errors.New("algo: destination unreachable")

	// ErrNilGraph is returned by Init when given a nil graph.
	ErrNilGraph = errors.New("algo: graph is nil")
)

// Option configures an Algorithms instance.
type Option func(*Algorithms)

// WithGraph attaches g instead of a fresh empty graph.
func WithGraph(g *core.Graph) Option {
	return func(a *Algorithms) {
		if g != nil {
			a.g = g
		}
	}
}

// WithStore sets the persistence collaborator used by Save and Load.
func WithStore(s *storage.FileStore) Option {
	return func(a *Algorithms) {
		if s != nil {
			a.store = s
		}
	}
}
