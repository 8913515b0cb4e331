// SPDX-License-Identifier: MIT

package metro

import (
	"fmt"

	"github.com/katalvlaran/metroline/core"
	"github.com/katalvlaran/metroline/dfs"
	"github.com/katalvlaran/metroline/dijkstra"
)

// Graph exposes the underlying graph for direct algorithm use.
func (n *Network) Graph() *core.Graph { return n.g }

// Counts returns the actual number of stations and connections.
func (n *Network) Counts() (stations, connections int) {
	return n.g.NumVertices(), n.g.NumEdges()
}

// Declared returns the counts from the input header.
func (n *Network) Declared() (stations, connections int) {
	return n.declaredStations, n.declaredConnections
}

// Station returns the station with the given key.
func (n *Network) Station(key int) (Station, error) {
	h, err := n.handle(key)
	if err != nil {
		return Station{}, err
	}

	return n.station(h)
}

// Line returns every station on the line through key, key first.
func (n *Network) Line(key int) ([]Station, error) {
	h, err := n.handle(key)
	if err != nil {
		return nil, err
	}

	hs, err := dfs.Line(n.g, h)
	if err != nil {
		return nil, fmt.Errorf("metro: line of %d: %w", key, err)
	}
	n.logger.Debug("line discovered", "station", key, "size", len(hs))

	return n.stations(hs)
}

// ShortestPath returns the fastest route from one station to another.
// An unreachable destination yields an error matching dijkstra.ErrNoPath.
func (n *Network) ShortestPath(from, to int) (*Route, error) {
	src, err := n.handle(from)
	if err != nil {
		return nil, err
	}
	dst, err := n.handle(to)
	if err != nil {
		return nil, err
	}

	p, err := dijkstra.ShortestPath(n.g, src, dst, dijkstra.WithTransferPenalty(n.penalty))
	if err != nil {
		return nil, fmt.Errorf("metro: route %d → %d: %w", from, to, err)
	}

	stations, err := n.stations(p.Vertices)
	if err != nil {
		return nil, err
	}
	n.logger.Debug("route found", "from", from, "to", to, "time", p.Time, "stops", len(stations))

	return &Route{Stations: stations, Time: p.Time}, nil
}

// CloseLine removes every station on the line through key together with
// all of their connections and returns the removed stations. The line is
// fully discovered before the first removal.
func (n *Network) CloseLine(key int) ([]Station, error) {
	closed, err := n.Line(key)
	if err != nil {
		return nil, err
	}

	for _, s := range closed {
		h := n.index[s.Key]
		if err := n.g.RemoveVertex(h); err != nil {
			return nil, fmt.Errorf("metro: close station %d: %w", s.Key, err)
		}
		delete(n.index, s.Key)
	}
	n.logger.Debug("line closed", "station", key, "removed", len(closed))

	return closed, nil
}

// SimulateClosure closes the line through closed on a copy of the network
// and routes from one station to another on what is left. The receiver is
// not modified.
//
// If from or to lies on the closed line the route query fails with
// ErrStationNotFound. Closed is populated even when routing fails.
func (n *Network) SimulateClosure(from, to, closed int) (*Closure, error) {
	cp := n.Clone()

	removed, err := cp.CloseLine(closed)
	if err != nil {
		return nil, err
	}

	res := &Closure{Closed: removed}
	res.Route, err = cp.ShortestPath(from, to)
	if err != nil {
		return res, err
	}

	return res, nil
}

// Clone returns an independent copy of the network.
func (n *Network) Clone() *Network {
	g := n.g.Clone()
	index := make(map[int]core.VertexHandle, len(n.index))
	for _, h := range g.Vertices() {
		v, err := g.Vertex(h)
		if err != nil {
			continue
		}
		if _, dup := index[v.Key]; !dup {
			index[v.Key] = h
		}
	}

	return &Network{
		g:                   g,
		index:               index,
		declaredStations:    n.declaredStations,
		declaredConnections: n.declaredConnections,
		logger:              n.logger,
		penalty:             n.penalty,
	}
}

func (n *Network) handle(key int) (core.VertexHandle, error) {
	h, ok := n.index[key]
	if !ok {
		return core.VertexHandle{}, fmt.Errorf("%w: %d", ErrStationNotFound, key)
	}

	return h, nil
}

func (n *Network) station(h core.VertexHandle) (Station, error) {
	v, err := n.g.Vertex(h)
	if err != nil {
		return Station{}, fmt.Errorf("metro: %w", err)
	}

	return Station{Key: v.Key, Name: v.Name}, nil
}

func (n *Network) stations(hs []core.VertexHandle) ([]Station, error) {
	out := make([]Station, 0, len(hs))
	for _, h := range hs {
		s, err := n.station(h)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}
