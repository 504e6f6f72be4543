package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/wgraph/core"
)

// parseEdgeList builds a graph from lines of the form
//
//	a b w    undirected edge a-b with weight w
//	k        isolated node k
//	# ...    comment
//
// Endpoints are created on first use. Repeated pairs keep the first weight.
func parseEdgeList(text string) (*core.Graph, error) {
	g := core.NewGraph()
	sc := bufio.NewScanner(strings.NewReader(text))
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch len(fields) {
		case 1:
			k, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid node key %q", line, fields[0])
			}
			g.AddNode(k)
		case 3:
			a, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid node key %q", line, fields[0])
			}
			b, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid node key %q", line, fields[1])
			}
			w, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid weight %q", line, fields[2])
			}
			if a == b {
				return nil, fmt.Errorf("line %d: self-loop on %d", line, a)
			}
			g.AddNode(a)
			g.AddNode(b)
			g.Connect(a, b, w)
		default:
			return nil, fmt.Errorf("line %d: expected \"a b weight\" or a single key, got %d fields", line, len(fields))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading edge list: %w", err)
	}

	return g, nil
}
