// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: InsertEdge/RemoveEdge/GetEdge/Edge/Edges/NumEdges/EndVertices.
// Determinism:
//   - Edges() returns handles in insertion order.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.
// AI-HINT (file):
//   - A second InsertEdge for the same ordered pair returns ErrDuplicateEdge; it never overwrites.
//   - GetEdge reports absence with ok==false; only foreign handles are errors.

package core

// InsertEdge creates the directed edge origin→dest with the given weight.
//
// Steps:
//  1. Validate both endpoints (ErrInvalidHandle).
//  2. Reject an existing origin→dest edge (ErrDuplicateEdge).
//  3. Append the edge record.
//  4. Link origin.out[dest] and dest.in[origin].
//
// Complexity: O(1) amortized.
func (g *Graph) InsertEdge(origin, dest VertexHandle, weight int64) (EdgeHandle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	o, err := g.vertexLocked(origin)
	if err != nil {
		return EdgeHandle{}, err
	}
	d, err := g.vertexLocked(dest)
	if err != nil {
		return EdgeHandle{}, err
	}
	if _, exists := o.out[dest.index]; exists {
		return EdgeHandle{}, ErrDuplicateEdge
	}

	eidx := uint32(len(g.edges))
	g.edges = append(g.edges, edgeRecord{
		origin: origin.index,
		dest:   dest.index,
		weight: weight,
		alive:  true,
	})
	o.out[dest.index] = eidx
	d.in[origin.index] = eidx
	g.numEdges++

	return EdgeHandle{graph: g.id, index: eidx}, nil
}

// GetEdge returns the edge origin→dest via the origin's outgoing map.
// ok is false when the vertices are valid but not adjacent.
//
// Errors:
//   - ErrInvalidHandle: origin or dest is not a live vertex of g.
//
// Complexity: O(1).
func (g *Graph) GetEdge(origin, dest VertexHandle) (e EdgeHandle, ok bool, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	o, err := g.vertexLocked(origin)
	if err != nil {
		return EdgeHandle{}, false, err
	}
	if _, err = g.vertexLocked(dest); err != nil {
		return EdgeHandle{}, false, err
	}
	eidx, ok := o.out[dest.index]
	if !ok {
		return EdgeHandle{}, false, nil
	}

	return EdgeHandle{graph: g.id, index: eidx}, true, nil
}

// RemoveEdge deletes e from both endpoint adjacency maps and the catalog.
//
// Errors:
//   - ErrInvalidHandle: e is foreign, zero, or already removed.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(e EdgeHandle) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, err := g.edgeLocked(e); err != nil {
		return err
	}
	g.removeEdgeLocked(e.index)

	return nil
}

// Edge returns a copy of the data stored for e.
func (g *Graph) Edge(e EdgeHandle) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rec, err := g.edgeLocked(e)
	if err != nil {
		return Edge{}, err
	}

	return g.edgeView(rec), nil
}

// EndVertices returns the origin and destination of e, in that order.
func (g *Graph) EndVertices(e EdgeHandle) (origin, dest VertexHandle, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rec, err := g.edgeLocked(e)
	if err != nil {
		return VertexHandle{}, VertexHandle{}, err
	}

	return g.vertexHandle(rec.origin), g.vertexHandle(rec.dest), nil
}

// Edges returns the handles of all live edges in insertion order.
func (g *Graph) Edges() []EdgeHandle {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]EdgeHandle, 0, g.numEdges)
	for i := range g.edges {
		if g.edges[i].alive {
			out = append(out, EdgeHandle{graph: g.id, index: uint32(i)})
		}
	}

	return out
}

// NumEdges returns the number of live edges. O(1).
func (g *Graph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.numEdges
}

// removeEdgeLocked unlinks a live edge slot. Caller holds mu write lock
// and has validated the slot.
func (g *Graph) removeEdgeLocked(eidx uint32) {
	rec := &g.edges[eidx]
	delete(g.vertices[rec.origin].out, rec.dest)
	delete(g.vertices[rec.dest].in, rec.origin)
	rec.alive = false
	g.numEdges--
}

// edgeLocked resolves e to its live record. Caller holds mu.
func (g *Graph) edgeLocked(e EdgeHandle) (*edgeRecord, error) {
	if e.graph != g.id || int(e.index) >= len(g.edges) {
		return nil, ErrInvalidHandle
	}
	rec := &g.edges[e.index]
	if !rec.alive {
		return nil, ErrInvalidHandle
	}

	return rec, nil
}

func (g *Graph) edgeView(rec *edgeRecord) Edge {
	return Edge{
		Origin: g.vertexHandle(rec.origin),
		Dest:   g.vertexHandle(rec.dest),
		Weight: rec.weight,
	}
}

func (g *Graph) vertexHandle(idx uint32) VertexHandle {
	return VertexHandle{graph: g.id, index: idx}
}
