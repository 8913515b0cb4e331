// Package core provides the in-memory transit graph: stations (vertices),
// directed timed connections (edges) and the adjacency caches that keep
// neighborhood lookups O(1).
//
// The Graph G = (V,E) is directed and weighted with these rules:
//
//   - At most one edge per ordered pair (origin, dest); a second
//     InsertEdge for the same pair fails with ErrDuplicateEdge.
//   - Each vertex keeps an outgoing map (dest → edge) and an incoming map
//     (origin → edge). The edge catalog is the source of truth; the maps
//     are maintained by InsertEdge/RemoveEdge/RemoveVertex only.
//   - RemoveVertex cascades to every incident edge before tombstoning the
//     vertex.
//   - The weight LineBreak (-1) marks a connection between different lines.
//
// Handles:
//
// Vertices and edges are addressed through VertexHandle and EdgeHandle,
// small comparable values made of the issuing graph's instance id and a
// catalog slot. Slots are never reused. Every operation validates handles
// against the store and rejects foreign, zero or removed ones with
// ErrInvalidHandle. Accessors return copies (Vertex, Edge, fresh slices),
// never live internal maps.
//
// Core Methods:
//
//	// Vertex lifecycle
//	InsertVertex(key int, name string) VertexHandle        // O(1)
//	RemoveVertex(v VertexHandle) error                     // O(deg(v))
//	GetVertex(key int) (VertexHandle, bool)                // O(V)
//
//	// Edge lifecycle
//	InsertEdge(o, d VertexHandle, w int64) (EdgeHandle, error) // O(1)
//	RemoveEdge(e EdgeHandle) error                             // O(1)
//	GetEdge(o, d VertexHandle) (EdgeHandle, bool, error)       // O(1)
//
//	// Query
//	OutDegree / InDegree(v)          // O(1)
//	OutgoingEdges / IncomingEdges(v) // O(d log d), slot order
//	Opposite(v, e), EndVertices(e)   // O(1)
//	Vertices(), Edges()              // insertion order
//	NumVertices(), NumEdges(), Stats()
//
// Errors:
//
//	ErrInvalidHandle – handle not issued by this graph, or entity removed
//	ErrDuplicateEdge – origin→dest edge already present
//	ErrNotIncident   – Opposite called with a vertex off the edge
//
// The Graph guards its state with a sync.RWMutex, but the supported usage
// is a single goroutine building the graph and then querying it; callers
// that share one across goroutines serialize compound operations themselves.
package core
