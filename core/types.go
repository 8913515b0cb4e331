// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, handle types, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - Graph.mu guards every catalog and adjacency map.
//   - Handles are plain values; they carry no pointers into the store.

package core

import (
	"errors"
	"sync"
	"sync/atomic"
)

// LineBreak is the edge weight that marks a connection between stations
// of different lines. Line traversal never crosses it; shortest-path
// search charges a transfer penalty for it instead.
const LineBreak int64 = -1

// Sentinel errors for core graph operations.
var (
	// ErrInvalidHandle indicates a vertex or edge handle that was not issued
	// by this graph instance, or whose entity has been removed.
	ErrInvalidHandle = errors.New("core: invalid handle")

	// ErrDuplicateEdge indicates an edge origin→dest already exists.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrNotIncident indicates Opposite was called with a vertex that is
	// neither endpoint of the edge.
	ErrNotIncident = errors.New("core: vertex is not incident to edge")
)

// graphSeq issues process-unique graph instance ids. Zero is never issued,
// so zero-value handles are always invalid.
var graphSeq uint64

// VertexHandle is an opaque reference to a vertex of one Graph instance.
type VertexHandle struct {
	graph uint64
	index uint32
}

// EdgeHandle is an opaque reference to an edge of one Graph instance.
type EdgeHandle struct {
	graph uint64
	index uint32
}

// IsZero reports whether h is the zero handle.
func (h VertexHandle) IsZero() bool { return h.graph == 0 }

// IsZero reports whether h is the zero handle.
func (h EdgeHandle) IsZero() bool { return h.graph == 0 }

// Vertex is a read-only copy of a station record.
type Vertex struct {
	// Key is the station number, unique within a graph by loader contract.
	Key int

	// Name is the display label; it may contain spaces.
	Name string
}

// Edge is a read-only copy of a directed connection.
type Edge struct {
	Origin VertexHandle
	Dest   VertexHandle

	// Weight is the travel time, or LineBreak.
	Weight int64
}

// IsLineBreak reports whether e connects two different lines.
func (e Edge) IsLineBreak() bool { return e.Weight == LineBreak }

// vertexRecord is the stored form of a vertex. out and in are adjacency
// caches derived from the edge catalog: out[dest] and in[origin] hold the
// slot index of the connecting edge.
type vertexRecord struct {
	Vertex
	alive bool
	out   map[uint32]uint32
	in    map[uint32]uint32
}

// edgeRecord is the stored form of an edge, by vertex slot.
type edgeRecord struct {
	origin uint32
	dest   uint32
	weight int64
	alive  bool
}

// Graph is a directed, weighted transit graph with at most one edge per
// ordered pair of vertices.
//
// Slots in vertices and edges are append-only; removal tombstones a slot
// and it is never reused, so stale handles stay invalid forever.
type Graph struct {
	mu sync.RWMutex

	id uint64

	vertices []vertexRecord
	edges    []edgeRecord

	numVertices int
	numEdges    int
}

// NewGraph creates an empty Graph with a fresh instance id.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{id: atomic.AddUint64(&graphSeq, 1)}
}
