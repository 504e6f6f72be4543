// File: codec.go
// Role: Graph <-> blob encoding.
// Determinism:
//   - Marshal of equal graphs with equal counters yields identical bytes
//     (snapshots are sorted, field order is fixed).

package storage

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/wgraph/core"
)

// FormatV1 identifies the current blob layout.
const FormatV1 = "wgraph/v1"

var (
	// ErrUnsupportedFormat is returned for blobs whose format header is missing or unknown.
	ErrUnsupportedFormat = errors.New("storage: unsupported blob format")

	// ErrNilGraph is returned when asked to encode a nil graph.
	ErrNilGraph = errors.New("storage: graph is nil")

	// ErrUnencodable is returned for graphs the blob cannot carry without
	// loss: Info that is not valid UTF-8, or a non-finite edge weight.
	ErrUnencodable = errors.New("storage: graph cannot be encoded losslessly")
)

// document is the on-disk shape of a graph blob.
type document struct {
	Format string        `json:"format"`
	Graph  core.Snapshot `json:"graph"`
}

// Marshal encodes g as a YAML blob.
//
// Errors:
//   - ErrNilGraph for a nil g.
//   - ErrUnencodable (wrapped) if a node Info is not valid UTF-8 or an edge
//     weight is ±Inf or NaN; such graphs would not decode back Equal.
func Marshal(g *core.Graph) ([]byte, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	snap := g.Snapshot()
	if err := checkEncodable(snap); err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(&document{Format: FormatV1, Graph: snap})
	if err != nil {
		return nil, fmt.Errorf("storage: encode graph: %w", err)
	}

	return data, nil
}

func checkEncodable(s core.Snapshot) error {
	for _, n := range s.Nodes {
		if !utf8.ValidString(n.Info) {
			return fmt.Errorf("%w: info of node %d is not valid UTF-8", ErrUnencodable, n.Key)
		}
	}
	for _, e := range s.Edges {
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return fmt.Errorf("%w: edge %d-%d has weight %v", ErrUnencodable, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// Unmarshal decodes a blob produced by Marshal.
//
// Errors:
//   - ErrUnsupportedFormat if the format header is not FormatV1.
//   - core.ErrCorruptSnapshot (wrapped) if the blob cannot be parsed or its
//     content does not describe a valid graph.
func Unmarshal(data []byte) (*core.Graph, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrCorruptSnapshot, err)
	}
	if doc.Format != FormatV1 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, doc.Format)
	}

	return core.FromSnapshot(doc.Graph)
}
