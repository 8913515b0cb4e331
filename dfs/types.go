// SPDX-License-Identifier: MIT
//
// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-order hooks, depth limiting, edge filtering
// and basic diagnostics.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/metroline/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or Line.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start handle is not a live
	// vertex of the graph. It wraps core.ErrInvalidHandle.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v core.VertexHandle) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// EdgeFilter, if non-nil, is called for each outgoing edge before the
	// neighbor is considered. Return false to skip the edge.
	EdgeFilter func(e core.Edge) bool
}

// DefaultOptions returns Options with a background context, no hook,
// no depth limit and no edge filter.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(v core.VertexHandle) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithEdgeFilter restricts traversal to edges for which fn returns true.
// Skipped edges are counted in Result.SkippedEdges.
func WithEdgeFilter(fn func(e core.Edge) bool) Option {
	return func(o *Options) {
		o.EdgeFilter = fn
	}
}

// SameLine is the edge filter used for line discovery: it rejects
// core.LineBreak connections.
func SameLine(e core.Edge) bool { return !e.IsLineBreak() }

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertices in discovery (pre-order) sequence; the start
	// vertex is first and no vertex appears twice.
	Order []core.VertexHandle

	// Depth maps each vertex to its tree distance (#edges) from the start.
	Depth map[core.VertexHandle]int

	// Parent maps each vertex to the vertex it was discovered from.
	// The start vertex has no entry.
	Parent map[core.VertexHandle]core.VertexHandle

	// Visited flags which vertices were reached.
	Visited map[core.VertexHandle]bool

	// SkippedEdges reports how many edges EdgeFilter rejected.
	SkippedEdges int
}
