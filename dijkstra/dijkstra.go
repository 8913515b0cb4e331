// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/katalvlaran/metroline/core"
)

// ShortestPaths computes the shortest-path tree rooted at source.
//
// Every vertex is seeded into the queue, the source at 0 and the rest at
// +∞. The loop extracts the minimum, finalizes it and relaxes its outgoing
// edges to non-finalized neighbours, lowering their keys in place. An
// extracted entry at +∞ ends the loop: everything still queued is
// unreachable.
//
// A core.LineBreak edge costs Options.TransferPenalty. Any other negative
// weight fails the run with ErrNegativeWeight before the search starts.
//
// Validation order:
//  1. g non-nil (ErrGraphNil).
//  2. TransferPenalty ≥ 0 (ErrBadPenalty).
//  3. source and StopAt (if set) live in g (core.ErrInvalidHandle).
//  4. No negative weight other than core.LineBreak (ErrNegativeWeight).
//
// Complexity: Time O((V + E) log V), Memory O(V).
func ShortestPaths(g *core.Graph, source core.VertexHandle, opts ...Option) (*Tree, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrGraphNil
	}
	if cfg.TransferPenalty < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadPenalty, cfg.TransferPenalty)
	}
	if !g.ContainsVertex(source) {
		return nil, fmt.Errorf("dijkstra: source: %w", core.ErrInvalidHandle)
	}
	if !cfg.StopAt.IsZero() && !g.ContainsVertex(cfg.StopAt) {
		return nil, fmt.Errorf("dijkstra: target: %w", core.ErrInvalidHandle)
	}
	if err := checkWeights(g); err != nil {
		return nil, err
	}

	r := newRunner(g, source, cfg)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.tree, nil
}

// ShortestPath returns the least-time path from source to target. The
// search stops as soon as target is finalized.
//
// Returns ErrNoPath when target is unreachable. source == target yields
// a single-vertex path of time 0.
func ShortestPath(g *core.Graph, source, target core.VertexHandle, opts ...Option) (*Path, error) {
	if g != nil && !g.ContainsVertex(target) {
		return nil, fmt.Errorf("dijkstra: target: %w", core.ErrInvalidHandle)
	}

	tree, err := ShortestPaths(g, source, append(opts[:len(opts):len(opts)], WithStopAt(target))...)
	if err != nil {
		return nil, err
	}

	return tree.PathTo(target)
}

// PathTo reconstructs the path from the tree's source to target by
// following predecessors backwards.
func (t *Tree) PathTo(target core.VertexHandle) (*Path, error) {
	if !t.g.ContainsVertex(target) {
		return nil, fmt.Errorf("dijkstra: target: %w", core.ErrInvalidHandle)
	}
	if !t.settled[target] {
		if t.complete {
			return nil, ErrNoPath
		}

		return nil, ErrNotSettled
	}

	verts := []core.VertexHandle{target}
	for cur := target; cur != t.Source; {
		p, ok := t.Prev[cur]
		if !ok {
			return nil, ErrNoPath
		}
		verts = append(verts, p)
		cur = p
	}
	slices.Reverse(verts)

	return &Path{Vertices: verts, Time: t.Dist[target]}, nil
}

// checkWeights scans every edge once and fails fast on a negative weight
// that is not the line-break sentinel.
func checkWeights(g *core.Graph) error {
	for _, h := range g.Edges() {
		e, err := g.Edge(h)
		if err != nil {
			return err
		}
		if e.Weight < 0 && !e.IsLineBreak() {
			return fmt.Errorf("%w: weight=%d", ErrNegativeWeight, e.Weight)
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	tree    *Tree
	items   map[core.VertexHandle]*nodeItem // vertex → queue entry
	pq      nodePQ
}

// newRunner seeds the queue with every vertex: source at 0, all others at +∞.
func newRunner(g *core.Graph, source core.VertexHandle, cfg Options) *runner {
	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		tree: &Tree{
			Source:   source,
			Dist:     make(map[core.VertexHandle]int64, len(vertices)),
			Prev:     make(map[core.VertexHandle]core.VertexHandle, len(vertices)),
			g:        g,
			settled:  make(map[core.VertexHandle]bool, len(vertices)),
			complete: true,
		},
		items: make(map[core.VertexHandle]*nodeItem, len(vertices)),
		pq:    make(nodePQ, 0, len(vertices)),
	}

	for _, v := range vertices {
		item := &nodeItem{v: v, dist: infinity, index: len(r.pq)}
		if v == source {
			item.dist = 0
		}
		r.items[v] = item
		r.pq = append(r.pq, item)
	}
	heap.Init(&r.pq)

	return r
}

// process is the main loop: extract the minimum, finalize it, relax.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if item.dist == infinity {
			break
		}

		u := item.v
		r.tree.settled[u] = true
		r.tree.Dist[u] = item.dist

		if u == r.options.StopAt {
			r.tree.complete = r.pq.Len() == 0
			break
		}

		if err := r.relax(u, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each outgoing edge of the finalized vertex u and lowers
// the key of any non-finalized neighbour it improves.
func (r *runner) relax(u core.VertexHandle, du int64) error {
	out, err := r.g.OutgoingEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: outgoing edges: %w", err)
	}

	for _, h := range out {
		e, err := r.g.Edge(h)
		if err != nil {
			return fmt.Errorf("dijkstra: edge: %w", err)
		}

		v := e.Dest
		if r.tree.settled[v] {
			continue
		}

		w := e.Weight
		if e.IsLineBreak() {
			w = r.options.TransferPenalty
		}
		if w >= infinity-du {
			continue
		}

		item := r.items[v]
		if nd := du + w; nd < item.dist {
			r.tree.Prev[v] = u
			r.pq.decrease(item, nd)
		}
	}

	return nil
}
