// SPDX-License-Identifier: MIT
package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/metroline/core"
	"github.com/katalvlaran/metroline/dfs"
)

// ExampleLine discovers the stations of one line. The -1 edge from
// Châtelet to its RER platform is a line change and is not followed.
func ExampleLine() {
	g := core.NewGraph()
	louvre := g.InsertVertex(1, "Louvre")
	chatelet := g.InsertVertex(2, "Châtelet")
	hotel := g.InsertVertex(3, "Hôtel de Ville")
	rer := g.InsertVertex(4, "Châtelet RER")

	_, _ = g.InsertEdge(louvre, chatelet, 60)
	_, _ = g.InsertEdge(chatelet, hotel, 45)
	_, _ = g.InsertEdge(chatelet, rer, core.LineBreak)

	line, err := dfs.Line(g, louvre)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, h := range line {
		v, _ := g.Vertex(h)
		fmt.Println(v.Key, v.Name)
	}

	// Output:
	// 1 Louvre
	// 2 Châtelet
	// 3 Hôtel de Ville
}
