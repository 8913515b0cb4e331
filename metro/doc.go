// Package metro loads a transit network from its text description and
// answers the three network queries on top of core, dfs and dijkstra:
//
//   - Line: the stations reachable from a station without changing lines.
//   - ShortestPath: the fastest route between two stations, a line change
//     costing the transfer penalty.
//   - SimulateClosure: close a whole line, then route between two other
//     stations on what remains.
//
// Stations are addressed by their integer key; the Network keeps the
// key → handle index in step with the graph when lines are closed.
//
// Errors:
//
//   - ErrMalformedInput   input cannot be parsed (wrapped with the line number)
//   - ErrStationNotFound  key not present in the network
//   - dijkstra.ErrNoPath  (wrapped) destination unreachable
package metro
