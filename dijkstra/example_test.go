// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/metroline/core"
	"github.com/katalvlaran/metroline/dijkstra"
)

// ExampleShortestPath finds the fastest ride between two stations where the
// direct connection is slower than a detour.
func ExampleShortestPath() {
	g := core.NewGraph()
	a := g.InsertVertex(1, "A")
	b := g.InsertVertex(2, "B")
	c := g.InsertVertex(3, "C")

	_, _ = g.InsertEdge(a, b, 10)
	_, _ = g.InsertEdge(a, c, 1)
	_, _ = g.InsertEdge(c, b, 1)

	p, err := dijkstra.ShortestPath(g, a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print("Time = ", p.Time, "\nPath :")
	for _, h := range p.Vertices {
		v, _ := g.Vertex(h)
		fmt.Print(" ", v.Key)
	}
	fmt.Println()

	// Output:
	// Time = 2
	// Path : 1 3 2
}

// ExampleWithTransferPenalty shows the cost of a line change.
func ExampleWithTransferPenalty() {
	g := core.NewGraph()
	a := g.InsertVertex(1, "A line 1")
	b := g.InsertVertex(2, "A line 2")
	_, _ = g.InsertEdge(a, b, core.LineBreak)

	for _, penalty := range []int64{dijkstra.DefaultTransferPenalty, 15} {
		p, err := dijkstra.ShortestPath(g, a, b, dijkstra.WithTransferPenalty(penalty))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(p.Time)
	}

	// Output:
	// 90
	// 15
}
