// Package metroline models a transit network as a directed, weighted graph
// and answers three questions about it: which stations share a line with a
// given station, what is the fastest route between two stations, and what
// that route becomes once a whole line is closed.
//
// Layout:
//
//	core/             — graph store: opaque vertex/edge handles, adjacency, removal
//	dfs/              — depth-first traversal and same-line discovery
//	dijkstra/         — shortest paths with an indexed heap and transfer penalty
//	metro/            — network file loader/writer and the three queries
//	internal/config   — defaults, viper binding, validation
//	internal/render   — text, json, yaml and terminal output
//	cmd/metroline     — cobra CLI
//
// Edge weights are travel times. The weight -1 (core.LineBreak) marks a
// change between lines at the same place: line discovery never crosses it
// and shortest-path search charges a fixed transfer penalty (90 by default).
//
// Quick start:
//
//	n, err := metro.LoadFile("metro.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	route, err := n.ShortestPath(1, 7)
//	switch {
//	case errors.Is(err, dijkstra.ErrNoPath):
//	    fmt.Println("unreachable")
//	case err != nil:
//	    log.Fatal(err)
//	default:
//	    fmt.Println(route.Time)
//	}
package metroline
