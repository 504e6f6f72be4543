package core

import (
	"sort"
	"strconv"
	"strings"
)

// String renders g as an adjacency list:
//
//	Vertices: 3 Edges: 2 MC: 5
//	0: #1(w=2.5), #2(w=1)
//	1: #0(w=2.5)
//	2: #0(w=1)
//
// Nodes and neighbors appear in ascending key order, so equal graphs render
// identically.
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString("Vertices: ")
	sb.WriteString(strconv.Itoa(len(g.nodes)))
	sb.WriteString(" Edges: ")
	sb.WriteString(strconv.Itoa(g.edgeCount))
	sb.WriteString(" MC: ")
	sb.WriteString(strconv.Itoa(g.mc))
	sb.WriteByte('\n')

	nbrs := make([]int, 0)
	for _, key := range g.sortedKeys() {
		sb.WriteString(strconv.Itoa(key))
		sb.WriteByte(':')

		nbrs = nbrs[:0]
		for nbr := range g.adj[key] {
			nbrs = append(nbrs, nbr)
		}
		sort.Ints(nbrs)
		for i, nbr := range nbrs {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(" #")
			sb.WriteString(strconv.Itoa(nbr))
			sb.WriteString("(w=")
			sb.WriteString(strconv.FormatFloat(g.adj[key][nbr], 'g', -1, 64))
			sb.WriteByte(')')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
