// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns handles in insertion order.
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.
//
// Notes:
//   - InsertVertex never checks key uniqueness; callers that need unique keys
//     look the key up with GetVertex first (the loader does).
package core

// InsertVertex appends a new vertex and returns its handle.
//
// Implementation:
//   - Stage 1: Acquire mu write lock.
//   - Stage 2: Append a live record with empty adjacency maps.
//   - Stage 3: Return a handle bound to this graph instance and the new slot.
//
// Behavior highlights:
//   - Always succeeds; duplicate keys are the caller's concern.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) InsertVertex(key int, name string) VertexHandle {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices = append(g.vertices, vertexRecord{
		Vertex: Vertex{Key: key, Name: name},
		alive:  true,
		out:    make(map[uint32]uint32),
		in:     make(map[uint32]uint32),
	})
	g.numVertices++

	return VertexHandle{graph: g.id, index: uint32(len(g.vertices) - 1)}
}

// RemoveVertex deletes v together with every incident edge.
//
// Implementation:
//   - Stage 1: Validate v (ErrInvalidHandle).
//   - Stage 2: Snapshot outgoing and incoming edge slots.
//   - Stage 3: Remove each snapshot edge through removeEdgeLocked.
//   - Stage 4: Tombstone the vertex slot.
//
// Behavior highlights:
//   - NumEdges() drops by exactly InDegree(v)+OutDegree(v); a self-loop counts once.
//   - Adjacency maps are never mutated while being ranged over.
//
// Errors:
//   - ErrInvalidHandle: v is foreign, zero, or already removed.
//
// Complexity:
//   - Time O(deg(v) log deg(v)), Space O(deg(v)).
func (g *Graph) RemoveVertex(v VertexHandle) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec, err := g.vertexLocked(v)
	if err != nil {
		return err
	}

	// A self-loop sits in both maps; the snapshot de-duplicates it.
	incident := append(sortedSlots(rec.out), sortedSlots(rec.in)...)
	seen := make(map[uint32]struct{}, len(incident))
	for _, eidx := range incident {
		if _, ok := seen[eidx]; ok {
			continue
		}
		seen[eidx] = struct{}{}
		g.removeEdgeLocked(eidx)
	}

	rec.alive = false
	rec.out = nil
	rec.in = nil
	g.numVertices--

	return nil
}

// GetVertex returns the live vertex whose Key equals key.
// The second result is false when no such vertex exists.
//
// Complexity: O(V) scan in insertion order; network sizes are small.
func (g *Graph) GetVertex(key int) (VertexHandle, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for i := range g.vertices {
		if g.vertices[i].alive && g.vertices[i].Key == key {
			return VertexHandle{graph: g.id, index: uint32(i)}, true
		}
	}

	return VertexHandle{}, false
}

// Vertex returns a copy of the data stored for v.
func (g *Graph) Vertex(v VertexHandle) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rec, err := g.vertexLocked(v)
	if err != nil {
		return Vertex{}, err
	}

	return rec.Vertex, nil
}

// ContainsVertex reports whether v is a live vertex of this graph.
func (g *Graph) ContainsVertex(v VertexHandle) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, err := g.vertexLocked(v)

	return err == nil
}

// Vertices returns the handles of all live vertices in insertion order.
// The slice is freshly allocated.
func (g *Graph) Vertices() []VertexHandle {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]VertexHandle, 0, g.numVertices)
	for i := range g.vertices {
		if g.vertices[i].alive {
			out = append(out, VertexHandle{graph: g.id, index: uint32(i)})
		}
	}

	return out
}

// NumVertices returns the number of live vertices. O(1).
func (g *Graph) NumVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.numVertices
}

// vertexLocked resolves v to its live record. Caller holds mu.
func (g *Graph) vertexLocked(v VertexHandle) (*vertexRecord, error) {
	if v.graph != g.id || int(v.index) >= len(g.vertices) {
		return nil, ErrInvalidHandle
	}
	rec := &g.vertices[v.index]
	if !rec.alive {
		return nil, ErrInvalidHandle
	}

	return rec, nil
}
