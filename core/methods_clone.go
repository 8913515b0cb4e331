// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Clone — deep copy of the live topology under a new instance id.
// AI-HINT (file):
//   - Handles of the source graph are foreign to the clone; map them by Key.

package core

import "sync/atomic"

// Clone returns a deep copy of the live vertices and edges of g.
// Insertion order is preserved; tombstoned slots are compacted away, so
// handles must be re-resolved on the clone (e.g. with GetVertex).
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		id:       atomic.AddUint64(&graphSeq, 1),
		vertices: make([]vertexRecord, 0, g.numVertices),
		edges:    make([]edgeRecord, 0, g.numEdges),
	}

	remap := make(map[uint32]uint32, g.numVertices)
	for i := range g.vertices {
		src := &g.vertices[i]
		if !src.alive {
			continue
		}
		remap[uint32(i)] = uint32(len(out.vertices))
		out.vertices = append(out.vertices, vertexRecord{
			Vertex: src.Vertex,
			alive:  true,
			out:    make(map[uint32]uint32, len(src.out)),
			in:     make(map[uint32]uint32, len(src.in)),
		})
	}

	for i := range g.edges {
		src := &g.edges[i]
		if !src.alive {
			continue
		}
		o, d := remap[src.origin], remap[src.dest]
		eidx := uint32(len(out.edges))
		out.edges = append(out.edges, edgeRecord{origin: o, dest: d, weight: src.weight, alive: true})
		out.vertices[o].out[d] = eidx
		out.vertices[d].in[o] = eidx
	}

	out.numVertices = len(out.vertices)
	out.numEdges = len(out.edges)

	return out
}
