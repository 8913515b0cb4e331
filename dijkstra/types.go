// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"

	"github.com/katalvlaran/metroline/core"
)

// DefaultTransferPenalty is the cost charged for crossing a core.LineBreak
// edge when no WithTransferPenalty option is given.
const DefaultTransferPenalty int64 = 90

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates an edge weight below zero that is not
	// the core.LineBreak sentinel.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadPenalty indicates a negative transfer penalty.
	ErrBadPenalty = errors.New("dijkstra: transfer penalty must be non-negative")

	// ErrNoPath indicates that the target is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrNotSettled indicates a PathTo query on a tree that stopped early
	// (WithStopAt) before the target's distance became final.
	ErrNotSettled = errors.New("dijkstra: target not settled")
)

// Options configures a shortest-path run.
type Options struct {
	// TransferPenalty is the effective weight of a core.LineBreak edge.
	TransferPenalty int64

	// StopAt, when non-zero, ends the search as soon as this vertex is
	// finalized.
	StopAt core.VertexHandle
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with DefaultTransferPenalty and no early stop.
func DefaultOptions() Options {
	return Options{TransferPenalty: DefaultTransferPenalty}
}

// WithTransferPenalty sets the cost of a line change. Negative values are
// rejected by ShortestPaths with ErrBadPenalty.
func WithTransferPenalty(p int64) Option {
	return func(o *Options) {
		o.TransferPenalty = p
	}
}

// WithStopAt ends the search once target is finalized.
func WithStopAt(target core.VertexHandle) Option {
	return func(o *Options) {
		o.StopAt = target
	}
}

// Path is a source→target route and its total time.
type Path struct {
	// Vertices lists the route, source first and target last.
	Vertices []core.VertexHandle

	// Time is the sum of effective weights along Vertices.
	Time int64
}

// Tree is a single-source shortest-path tree.
//
// Dist holds final distances for settled vertices. Prev maps every
// reached vertex except the source to its predecessor.
type Tree struct {
	Source core.VertexHandle
	Dist   map[core.VertexHandle]int64
	Prev   map[core.VertexHandle]core.VertexHandle

	g        *core.Graph
	settled  map[core.VertexHandle]bool
	complete bool
}
