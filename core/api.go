// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin read-only facade: Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.

package core

// Stats is a point-in-time summary of a Graph.
type Stats struct {
	Vertices   int // live vertices
	Edges      int // live edges
	LineBreaks int // live edges whose weight is LineBreak
}

// Stats produces a read-only snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire mu read lock.
//   - Stage 2: Copy the live counters and count LineBreak edges in one pass.
//
// Complexity:
//   - Time O(E) counting slots (tombstones included), Space O(1).
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{Vertices: g.numVertices, Edges: g.numEdges}
	for i := range g.edges {
		if g.edges[i].alive && g.edges[i].weight == LineBreak {
			s.LineBreaks++
		}
	}

	return s
}
