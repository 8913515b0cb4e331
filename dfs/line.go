// SPDX-License-Identifier: MIT

package dfs

import "github.com/katalvlaran/metroline/core"

// Line returns the stations of the line through start: every vertex
// reachable from start over same-line edges (weight != core.LineBreak),
// in discovery order, start first.
//
// Start is always included exactly once, even when it has no same-line
// outgoing edge. The graph is not modified.
func Line(g *core.Graph, start core.VertexHandle) ([]core.VertexHandle, error) {
	res, err := DFS(g, start, WithEdgeFilter(SameLine))
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}
