// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/katalvlaran/metroline/core"
)

// ExampleGraph shows building two stations of a line plus a transfer, then
// removing a station and watching its connections disappear.
func ExampleGraph() {
	g := core.NewGraph()
	nation := g.InsertVertex(10, "Nation")
	bastille := g.InsertVertex(11, "Bastille")
	transfer := g.InsertVertex(12, "Nation (RER A)")

	_, _ = g.InsertEdge(nation, bastille, 120)
	_, _ = g.InsertEdge(bastille, nation, 120)
	_, _ = g.InsertEdge(nation, transfer, core.LineBreak)

	if _, err := g.InsertEdge(nation, bastille, 90); err != nil {
		fmt.Println("duplicate:", err)
	}

	out, _ := g.OutDegree(nation)
	fmt.Println("stations:", g.NumVertices(), "connections:", g.NumEdges(), "out(Nation):", out)

	_ = g.RemoveVertex(nation)
	fmt.Println("stations:", g.NumVertices(), "connections:", g.NumEdges())

	// Output:
	// duplicate: core: edge already exists
	// stations: 3 connections: 3 out(Nation): 2
	// stations: 2 connections: 0
}
