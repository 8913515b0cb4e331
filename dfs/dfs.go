// SPDX-License-Identifier: MIT
//
// Package dfs implements depth-first search on core.Graph over outgoing edges,
// with cancellation, a pre-order hook, depth limit and edge filtering.
//
// Complexity:
//
//   - Time:   O(V + E log d) (outgoing edges are fetched in slot order).
//   - Memory: O(V) for the recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if start is not a live vertex of g.
//   - context.Canceled        if ctx is done.
//   - any error returned by OnVisit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/metroline/core"
)

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs a depth-first search of g starting at start.
// Returns the Result, or the partial Result with an error if aborted by
// context or hook.
func DFS(g *core.Graph, start core.VertexHandle, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify start belongs to g
	if !g.ContainsVertex(start) {
		return nil, fmt.Errorf("%w: %w", ErrStartVertexNotFound, core.ErrInvalidHandle)
	}

	// 4. Initialize result with capacity hint
	n := g.NumVertices()
	res := &Result{
		Order:   make([]core.VertexHandle, 0, n),
		Depth:   make(map[core.VertexHandle]int, n),
		Parent:  make(map[core.VertexHandle]core.VertexHandle, n),
		Visited: make(map[core.VertexHandle]bool, n),
	}

	w := &walker{graph: g, opts: dopts, res: res}
	if err := w.traverse(start, 0); err != nil {
		return res, err
	}

	return res, nil
}

// traverse marks v visited, then recurses into each unvisited neighbor
// reachable through an accepted outgoing edge.
func (w *walker) traverse(v core.VertexHandle, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth
	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	w.res.Order = append(w.res.Order, v)

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook: %w", err)
		}
	}

	// 4. Depth limit: do not expand beyond MaxDepth
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		return nil
	}

	// 5. Fetch outgoing edges once
	out, err := w.graph.OutgoingEdges(v)
	if err != nil {
		return fmt.Errorf("dfs: OutgoingEdges: %w", err)
	}

	// 6. Explore each neighbor
	for _, eh := range out {
		e, err := w.graph.Edge(eh)
		if err != nil {
			return fmt.Errorf("dfs: Edge: %w", err)
		}
		if w.opts.EdgeFilter != nil && !w.opts.EdgeFilter(e) {
			w.res.SkippedEdges++
			continue
		}

		next, err := w.graph.Opposite(v, eh)
		if err != nil {
			return fmt.Errorf("dfs: Opposite: %w", err)
		}
		if w.res.Visited[next] {
			continue
		}
		w.res.Parent[next] = v
		if err = w.traverse(next, depth+1); err != nil {
			return err
		}
	}

	return nil
}
