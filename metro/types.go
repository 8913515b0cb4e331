// SPDX-License-Identifier: MIT

package metro

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/metroline/core"
	"github.com/katalvlaran/metroline/dijkstra"
)

// Sentinel errors for loading and querying a network.
var (
	// ErrMalformedInput indicates a network file that cannot be parsed.
	// It is always wrapped with the offending line number.
	ErrMalformedInput = errors.New("metro: malformed input")

	// ErrStationNotFound indicates a station key absent from the network,
	// either never loaded or removed by a line closure.
	ErrStationNotFound = errors.New("metro: station not found")
)

// Station is one stop of the network.
type Station struct {
	Key  int    `json:"key" yaml:"key"`
	Name string `json:"name" yaml:"name"`
}

// Route is a shortest path between two stations.
type Route struct {
	Stations []Station `json:"stations" yaml:"stations"`
	Time     int64     `json:"time" yaml:"time"`
}

// Closure is the outcome of SimulateClosure: the stations removed with the
// closed line and the best route left between the two endpoints.
type Closure struct {
	Closed []Station `json:"closed" yaml:"closed"`
	Route  *Route    `json:"route" yaml:"route"`
}

// Network is a transit graph plus the key index built while loading it.
//
// A Network is not safe for concurrent mutation; CloseLine must not race
// with queries.
type Network struct {
	g     *core.Graph
	index map[int]core.VertexHandle

	declaredStations    int
	declaredConnections int

	logger  *slog.Logger
	penalty int64
}

// Options configures Load and LoadFile.
type Options struct {
	Logger          *slog.Logger
	TransferPenalty int64
}

// Option represents a functional option for configuring a Network.
type Option func(*Options)

// DefaultOptions returns a discarding logger and the default transfer penalty.
func DefaultOptions() Options {
	return Options{
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		TransferPenalty: dijkstra.DefaultTransferPenalty,
	}
}

// WithLogger sets the logger used for load diagnostics and query tracing.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTransferPenalty sets the cost of a line change used by ShortestPath.
func WithTransferPenalty(p int64) Option {
	return func(o *Options) {
		o.TransferPenalty = p
	}
}
