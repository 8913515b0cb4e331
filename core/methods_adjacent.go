// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (OutDegree/InDegree, OutgoingEdges/IncomingEdges, Opposite) and adjacency helpers.
// Determinism:
//   - OutgoingEdges()/IncomingEdges() return edges sorted by edge slot (insertion order).
// Concurrency:
//   - Read operations hold mu read lock.
// AI-HINT (file):
//   - Returned slices are copies; mutating them never touches adjacency state.
//   - Opposite(v,e) with v not an endpoint of e returns ErrNotIncident.

package core

import "sort"

// OutDegree returns the number of edges whose origin is v.
func (g *Graph) OutDegree(v VertexHandle) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rec, err := g.vertexLocked(v)
	if err != nil {
		return 0, err
	}

	return len(rec.out), nil
}

// InDegree returns the number of edges whose destination is v.
func (g *Graph) InDegree(v VertexHandle) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rec, err := g.vertexLocked(v)
	if err != nil {
		return 0, err
	}

	return len(rec.in), nil
}

// OutgoingEdges returns the edges whose origin is v.
//
// Implementation:
//   - Stage 1: Validate v under the read lock.
//   - Stage 2: Copy the edge slots of v's outgoing map and sort them.
//   - Stage 3: Wrap each slot in a handle.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d = OutDegree(v).
func (g *Graph) OutgoingEdges(v VertexHandle) ([]EdgeHandle, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rec, err := g.vertexLocked(v)
	if err != nil {
		return nil, err
	}

	return g.edgeHandles(sortedSlots(rec.out)), nil
}

// IncomingEdges returns the edges whose destination is v.
// Complexity: O(d log d), where d = InDegree(v).
func (g *Graph) IncomingEdges(v VertexHandle) ([]EdgeHandle, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rec, err := g.vertexLocked(v)
	if err != nil {
		return nil, err
	}

	return g.edgeHandles(sortedSlots(rec.in)), nil
}

// Opposite returns the endpoint of e that is not v.
// For a self-loop the opposite of its vertex is the vertex itself.
//
// Errors:
//   - ErrInvalidHandle: v or e is not live in g.
//   - ErrNotIncident: v is neither endpoint of e.
func (g *Graph) Opposite(v VertexHandle, e EdgeHandle) (VertexHandle, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, err := g.vertexLocked(v); err != nil {
		return VertexHandle{}, err
	}
	rec, err := g.edgeLocked(e)
	if err != nil {
		return VertexHandle{}, err
	}

	switch v.index {
	case rec.origin:
		return g.vertexHandle(rec.dest), nil
	case rec.dest:
		return g.vertexHandle(rec.origin), nil
	default:
		return VertexHandle{}, ErrNotIncident
	}
}

// sortedSlots returns the edge slots held by an adjacency map, ascending.
func sortedSlots(adj map[uint32]uint32) []uint32 {
	out := make([]uint32, 0, len(adj))
	for _, eidx := range adj {
		out = append(out, eidx)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func (g *Graph) edgeHandles(slots []uint32) []EdgeHandle {
	out := make([]EdgeHandle, len(slots))
	for i, eidx := range slots {
		out[i] = EdgeHandle{graph: g.id, index: eidx}
	}

	return out
}
